package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrz1836/scribe/internal/domain"
)

// renderResult writes a CommitResult to w in the requested output format.
func renderResult(w io.Writer, outputFormat string, result *domain.CommitResult) error {
	if outputFormat == OutputJSON {
		return writeJSON(w, result)
	}
	renderResultText(w, result)
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderResultText writes the human-readable rendering of a result.
func renderResultText(w io.Writer, result *domain.CommitResult) {
	if result.NeedsConfirmation {
		fmt.Fprintln(w, "Unstaged changes need confirmation before committing:")
		for _, file := range result.UnstagedFiles {
			fmt.Fprintf(w, "  %s\n", file)
		}
		fmt.Fprintf(w, "\n%s\n", result.Instruction)
		return
	}

	if !result.Success {
		fmt.Fprintln(w, "Commit message rejected:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, result.Message)
		fmt.Fprintln(w)
		fmt.Fprintln(w, result.Error)
		return
	}

	fmt.Fprintln(w, result.Message)
	fmt.Fprintln(w)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: [%s] %s\n", warning.Rule, warning.Message)
	}
	if result.StagedCount > 0 {
		fmt.Fprintf(w, "Staged %d file(s)\n", result.StagedCount)
	}
	if result.AutoCommitted {
		fmt.Fprintf(w, "Committed as %s\n", result.CommitSHA)
	} else {
		fmt.Fprintln(w, "Message saved; commit when ready")
	}
}
