// Package validate provides commit message validation for scribe.
//
// Validators judge a candidate commit message against a loaded rule set and
// report structured violations and warnings. A message is wholly accepted or
// wholly rejected; validators never mutate repository or external state.
package validate

import (
	"fmt"
	"strings"

	"github.com/mrz1836/scribe/internal/domain"
)

// DefaultValidatorName is the validator the orchestrator looks up when none
// is configured.
const DefaultValidatorName = "conventional"

// Outcome is the result of validating a single candidate message.
// It is produced fresh per candidate and never partially applied.
type Outcome struct {
	// Valid is true when no violations were found. Warnings alone do not
	// invalidate a message.
	Valid bool `json:"valid"`

	// Violations lists the rules the message broke, in evaluation order.
	Violations []domain.Issue `json:"violations,omitempty"`

	// Warnings lists non-fatal findings, in evaluation order.
	Warnings []domain.Issue `json:"warnings,omitempty"`
}

// Validator judges candidate commit messages against a rule set.
type Validator interface {
	// Name returns the registry name of this validator.
	Name() string

	// LoadConfig loads the rule set. It must complete before the first
	// Validate call and is safe to call more than once.
	LoadConfig() error

	// Validate checks the message against the loaded rule set. It is a pure
	// function of the message text and the rule set. Returns
	// ErrValidatorNotReady if called before LoadConfig.
	Validate(message string) (*Outcome, error)
}

// RuleBound is optionally implemented by validators whose rule set can be
// replaced at runtime. The orchestrator uses it to hand the resolved preset's
// rules to the active validator before validating a candidate.
type RuleBound interface {
	BindRules(rules *RuleSet)
}

// IssueFormatter is optionally implemented by validators that can render
// their issues for humans.
type IssueFormatter interface {
	FormatIssues(issues []domain.Issue) string
}

// FormatIssues renders issues using the validator's own formatter when it
// has one, falling back to a raw structured dump otherwise.
func FormatIssues(v Validator, issues []domain.Issue) string {
	if f, ok := v.(IssueFormatter); ok {
		return f.FormatIssues(issues)
	}
	return rawDump(issues)
}

// rawDump is the best-effort fallback rendering of issues.
func rawDump(issues []domain.Issue) string {
	var sb strings.Builder
	for _, issue := range issues {
		fmt.Fprintf(&sb, "[%s] %s\n", issue.Rule, issue.Message)
	}
	return strings.TrimRight(sb.String(), "\n")
}
