package prompts

import (
	"bytes"
	"fmt"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// Render executes a prompt template with the provided data and returns the
// result. The data type should match the expected type for the given prompt
// ID.
//
// Example:
//
//	data := prompts.CommitUserData{
//	    Intent: "add retry logic",
//	    Diff:   diff,
//	}
//	prompt, err := prompts.Render(prompts.CommitUser, data)
func Render(id PromptID, data any) (string, error) {
	tmpl, ok := globalRegistry.get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", scribeerrors.ErrTemplateNotFound, id)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("prompt %s: %w: %w", id, scribeerrors.ErrTemplateExecution, err)
	}

	return buf.String(), nil
}

// List returns all registered prompt IDs.
// Useful for debugging or documentation generation.
func List() []PromptID {
	return globalRegistry.list()
}

// Exists checks if a prompt ID is registered.
func Exists(id PromptID) bool {
	_, ok := globalRegistry.get(id)
	return ok
}
