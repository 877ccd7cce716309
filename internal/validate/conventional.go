// Package validate provides commit message validation for scribe.
// This file implements the conventional commits validator.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/mrz1836/scribe/internal/domain"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// Compile-time interface checks.
var (
	_ Validator      = (*Conventional)(nil)
	_ IssueFormatter = (*Conventional)(nil)
	_ RuleBound      = (*Conventional)(nil)
)

// RuleSet holds the formatting rules enforced by the Conventional validator.
type RuleSet struct {
	// SubjectMaxLength is the hard limit for the subject line.
	SubjectMaxLength int

	// SubjectWarnLength triggers a warning when exceeded but still passing.
	SubjectWarnLength int

	// BodyLineMaxLength is the wrap limit for body lines; exceeding it is a
	// warning, not a violation.
	BodyLineMaxLength int

	// RequireBody demands a body paragraph after the subject.
	RequireBody bool

	// ForbidBody demands a subject-only message.
	ForbidBody bool

	// Types lists allowed conventional commit types. Empty means subjects
	// are checked for a "prefix: summary" shape instead of a typed header.
	Types []string
}

// DefaultRuleSet returns the rules used when LoadConfig finds none configured.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		SubjectMaxLength:  72,
		SubjectWarnLength: 50,
		BodyLineMaxLength: 100,
		Types:             []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "build", "ci"},
	}
}

// subjectPattern matches "type(scope)!: description" with optional scope and
// breaking-change marker.
var subjectPattern = regexp.MustCompile(`^([a-z]+)(\(([^)]+)\))?(!)?: (.+)$`)

// prefixPattern matches the untyped "subsystem: summary" subject shape.
var prefixPattern = regexp.MustCompile(`^[\w./-]+(/[\w.-]+)*: .+$`)

// Conventional validates commit messages against conventional-commit rules.
// The zero value is not ready for use; construct with NewConventional and
// call LoadConfig before Validate.
type Conventional struct {
	mu     sync.RWMutex
	rules  *RuleSet
	loaded bool
}

// NewConventional creates a conventional commits validator.
// A nil rules argument defers to DefaultRuleSet at LoadConfig time.
func NewConventional(rules *RuleSet) *Conventional {
	return &Conventional{rules: rules}
}

// Name returns the registry name of this validator.
func (v *Conventional) Name() string {
	return DefaultValidatorName
}

// LoadConfig loads the rule set. Idempotent; later calls keep the rules
// loaded first.
func (v *Conventional) LoadConfig() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loaded {
		return nil
	}
	if v.rules == nil {
		v.rules = DefaultRuleSet()
	}
	v.loaded = true
	return nil
}

// BindRules replaces the active rule set and marks the validator ready.
// A nil argument falls back to DefaultRuleSet.
func (v *Conventional) BindRules(rules *RuleSet) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if rules == nil {
		rules = DefaultRuleSet()
	}
	v.rules = rules
	v.loaded = true
}

// Validate checks the message against the loaded rule set.
func (v *Conventional) Validate(message string) (*Outcome, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !v.loaded {
		return nil, fmt.Errorf("%w: call LoadConfig before Validate", scribeerrors.ErrValidatorNotReady)
	}

	outcome := &Outcome{}

	message = strings.TrimRight(message, "\n")
	if strings.TrimSpace(message) == "" {
		outcome.addViolation("message-empty", "commit message is empty")
		return outcome, nil
	}

	lines := strings.Split(message, "\n")
	v.checkSubject(lines[0], outcome)
	v.checkBody(lines, outcome)

	outcome.Valid = len(outcome.Violations) == 0
	return outcome, nil
}

// checkSubject validates the first line of the message.
func (v *Conventional) checkSubject(subject string, outcome *Outcome) {
	// Length limits count runes, not bytes, so multibyte subjects are not
	// penalized for their encoding.
	subjectLen := utf8.RuneCountInString(subject)
	if subjectLen > v.rules.SubjectMaxLength {
		outcome.addViolation("subject-max-length",
			fmt.Sprintf("subject is %d characters, limit is %d", subjectLen, v.rules.SubjectMaxLength))
	} else if v.rules.SubjectWarnLength > 0 && subjectLen > v.rules.SubjectWarnLength {
		outcome.addWarning("subject-length",
			fmt.Sprintf("subject is %d characters, consider staying under %d", subjectLen, v.rules.SubjectWarnLength))
	}

	if strings.HasSuffix(subject, ".") {
		outcome.addViolation("subject-full-stop", "subject must not end with a period")
	}

	if len(v.rules.Types) == 0 {
		if !prefixPattern.MatchString(subject) {
			outcome.addViolation("subject-format", "subject must look like 'subsystem: summary'")
		}
		return
	}

	m := subjectPattern.FindStringSubmatch(subject)
	if m == nil {
		outcome.addViolation("subject-format", "subject must look like 'type(scope): description'")
		return
	}

	commitType, description := m[1], m[5]
	if !containsString(v.rules.Types, commitType) {
		outcome.addViolation("type-unknown",
			fmt.Sprintf("type %q is not one of %s", commitType, strings.Join(v.rules.Types, ", ")))
	}

	if description != "" && unicode.IsUpper(rune(description[0])) {
		outcome.addWarning("subject-case", "description should start lowercase")
	}
}

// checkBody validates everything after the subject line.
func (v *Conventional) checkBody(lines []string, outcome *Outcome) {
	hasBody := false
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			hasBody = true
			break
		}
	}

	if v.rules.RequireBody && !hasBody {
		outcome.addViolation("body-required", "this style requires a body after the subject")
	}
	if v.rules.ForbidBody && hasBody {
		outcome.addViolation("body-forbidden", "this style requires a subject-only message")
	}
	if !hasBody {
		return
	}

	// Subject and body must be separated by exactly one blank line
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		outcome.addViolation("body-blank-line", "subject and body must be separated by a blank line")
	}

	if v.rules.BodyLineMaxLength > 0 {
		for i, line := range lines[1:] {
			if lineLen := utf8.RuneCountInString(line); lineLen > v.rules.BodyLineMaxLength {
				outcome.addWarning("body-line-length",
					fmt.Sprintf("body line %d is %d characters, limit is %d", i+2, lineLen, v.rules.BodyLineMaxLength))
			}
		}
	}
}

// FormatIssues renders issues for human display.
func (v *Conventional) FormatIssues(issues []domain.Issue) string {
	if len(issues) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("commit message validation failed:\n")
	for _, issue := range issues {
		fmt.Fprintf(&sb, "  ✗ %s: %s\n", issue.Rule, issue.Message)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (o *Outcome) addViolation(rule, message string) {
	o.Violations = append(o.Violations, domain.Issue{Rule: rule, Message: message})
}

func (o *Outcome) addWarning(rule, message string) {
	o.Warnings = append(o.Warnings, domain.Issue{Rule: rule, Message: message})
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
