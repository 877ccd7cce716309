// Package preset provides the static catalog of commit message presets.
//
// A preset bundles the formatting rules enforced by validation with the
// behavioral instructions used verbatim when building a generation prompt.
// The catalog is a closed set: every style in domain.ValidStyles has exactly
// one entry, and unknown styles resolve to the default entry.
package preset

import (
	"fmt"
	"sort"

	"github.com/mrz1836/scribe/internal/domain"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// Config is an immutable preset record.
type Config struct {
	// Name is the style this preset is registered under.
	Name domain.Style `yaml:"name" json:"name"`

	// Description is a one-line summary shown by `scribe preset list`.
	Description string `yaml:"description" json:"description"`

	// SubjectMaxLength is the hard limit for the subject line.
	SubjectMaxLength int `yaml:"subject_max_length" json:"subject_max_length"`

	// SubjectWarnLength triggers a warning (not a violation) when exceeded.
	SubjectWarnLength int `yaml:"subject_warn_length" json:"subject_warn_length"`

	// BodyLineMaxLength is the wrap limit for body lines.
	BodyLineMaxLength int `yaml:"body_line_max_length" json:"body_line_max_length"`

	// RequireBody demands a body paragraph after the subject.
	RequireBody bool `yaml:"require_body" json:"require_body"`

	// ForbidBody demands a subject-only message.
	ForbidBody bool `yaml:"forbid_body" json:"forbid_body"`

	// Types lists the allowed conventional commit types.
	Types []string `yaml:"types" json:"types"`

	// Instructions is the natural-language guidance included verbatim in the
	// generation system prompt.
	Instructions string `yaml:"instructions" json:"instructions"`
}

// defaultTypes are the conventional commit types accepted by every preset.
func defaultTypes() []string {
	return []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "build", "ci"}
}

// Catalog maps styles to preset configs with deterministic default fallback.
type Catalog struct {
	entries map[domain.Style]Config
}

// NewCatalog builds the built-in preset catalog.
func NewCatalog() *Catalog {
	entries := map[domain.Style]Config{
		domain.StyleDefault: {
			Name:              domain.StyleDefault,
			Description:       "Conventional commit with a short explanatory body",
			SubjectMaxLength:  72,
			SubjectWarnLength: 50,
			BodyLineMaxLength: 100,
			Types:             defaultTypes(),
			Instructions: "Write a conventional commit message: <type>(<scope>): <description>. " +
				"Use lowercase for the description and no trailing period. " +
				"After a blank line, add one or two sentences explaining what changed and why.",
		},
		domain.StyleDetailed: {
			Name:              domain.StyleDetailed,
			Description:       "Conventional commit with a required multi-line body",
			SubjectMaxLength:  72,
			SubjectWarnLength: 50,
			BodyLineMaxLength: 100,
			RequireBody:       true,
			Types:             defaultTypes(),
			Instructions: "Write a conventional commit message with a thorough body. " +
				"The body is required: describe the motivation, the approach, and any " +
				"side effects as short paragraphs or bullet points. Wrap body lines at 100 characters.",
		},
		domain.StyleMinimal: {
			Name:              domain.StyleMinimal,
			Description:       "Subject-only conventional commit",
			SubjectMaxLength:  50,
			SubjectWarnLength: 50,
			BodyLineMaxLength: 100,
			ForbidBody:        true,
			Types:             defaultTypes(),
			Instructions: "Write a single-line conventional commit subject, at most 50 characters. " +
				"Do not include a body.",
		},
		domain.StyleKernel: {
			Name:              domain.StyleKernel,
			Description:       "Kernel-style subsystem prefix with imperative subject",
			SubjectMaxLength:  75,
			SubjectWarnLength: 60,
			BodyLineMaxLength: 75,
			RequireBody:       true,
			Types:             nil, // kernel style uses subsystem prefixes, not conventional types
			Instructions: "Write a kernel-style commit message: '<subsystem>: <imperative summary>' " +
				"followed by a blank line and a body that explains the problem and the fix in plain " +
				"prose wrapped at 75 characters.",
		},
	}

	return &Catalog{entries: entries}
}

// Resolve returns the preset for the requested style, falling back to the
// default preset on miss. The second return value reports whether the
// fallback was taken.
func (c *Catalog) Resolve(style domain.Style) (Config, bool) {
	if style == "" {
		return c.entries[domain.StyleDefault], false
	}
	if cfg, ok := c.entries[style]; ok {
		return cfg, false
	}
	return c.entries[domain.StyleDefault], true
}

// Get returns the preset for the exact style name, without fallback.
func (c *Catalog) Get(style domain.Style) (Config, error) {
	cfg, ok := c.entries[style]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s", scribeerrors.ErrUnknownPreset, style)
	}
	return cfg, nil
}

// Names returns all registered styles in sorted order.
func (c *Catalog) Names() []domain.Style {
	names := make([]domain.Style, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
