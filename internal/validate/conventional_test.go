package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
	"github.com/mrz1836/scribe/internal/validate"
)

func loadedValidator(t *testing.T, rules *validate.RuleSet) *validate.Conventional {
	t.Helper()
	v := validate.NewConventional(rules)
	require.NoError(t, v.LoadConfig())
	return v
}

func TestValidateBeforeLoadConfig(t *testing.T) {
	t.Parallel()

	v := validate.NewConventional(nil)
	_, err := v.Validate("feat: add x")
	require.Error(t, err)
	assert.ErrorIs(t, err, scribeerrors.ErrValidatorNotReady)
}

func TestLoadConfigIsIdempotent(t *testing.T) {
	t.Parallel()

	v := validate.NewConventional(nil)
	require.NoError(t, v.LoadConfig())
	require.NoError(t, v.LoadConfig())

	outcome, err := v.Validate("feat: add x")
	require.NoError(t, err)
	assert.True(t, outcome.Valid)
}

func TestValidateAcceptsWellFormedMessages(t *testing.T) {
	t.Parallel()

	v := loadedValidator(t, nil)

	cases := []string{
		"feat: add retry logic",
		"fix(upload): handle nil response",
		"refactor(core)!: drop legacy config keys",
		"docs: update readme\n\nExplain the new flags and their defaults.",
	}
	for _, message := range cases {
		outcome, err := v.Validate(message)
		require.NoError(t, err)
		assert.True(t, outcome.Valid, "expected valid: %q, violations: %v", message, outcome.Violations)
		assert.Empty(t, outcome.Violations)
	}
}

func TestValidateViolations(t *testing.T) {
	t.Parallel()

	v := loadedValidator(t, nil)

	cases := []struct {
		name    string
		message string
		rule    string
	}{
		{"empty message", "   \n ", "message-empty"},
		{"missing type header", "added some stuff", "subject-format"},
		{"unknown type", "feature: add x", "type-unknown"},
		{"trailing period", "feat: add x.", "subject-full-stop"},
		{"subject too long", "feat: " + strings.Repeat("x", 80), "subject-max-length"},
		{"no blank line before body", "feat: add x\nbody right here", "body-blank-line"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			outcome, err := v.Validate(tc.message)
			require.NoError(t, err)
			assert.False(t, outcome.Valid)

			rules := make([]string, 0, len(outcome.Violations))
			for _, issue := range outcome.Violations {
				rules = append(rules, issue.Rule)
			}
			assert.Contains(t, rules, tc.rule)
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	t.Parallel()

	v := loadedValidator(t, nil)

	t.Run("long but legal subject warns", func(t *testing.T) {
		t.Parallel()
		outcome, err := v.Validate("feat(orchestrator): teach the staging step about renamed fi")
		require.NoError(t, err)
		assert.True(t, outcome.Valid)
		require.NotEmpty(t, outcome.Warnings)
		assert.Equal(t, "subject-length", outcome.Warnings[0].Rule)
	})

	t.Run("capitalized description warns", func(t *testing.T) {
		t.Parallel()
		outcome, err := v.Validate("feat: Add retry logic")
		require.NoError(t, err)
		assert.True(t, outcome.Valid)
		require.NotEmpty(t, outcome.Warnings)
		assert.Equal(t, "subject-case", outcome.Warnings[0].Rule)
	})
}

func TestBodyPolicies(t *testing.T) {
	t.Parallel()

	t.Run("required body missing", func(t *testing.T) {
		t.Parallel()
		v := loadedValidator(t, &validate.RuleSet{
			SubjectMaxLength: 72,
			RequireBody:      true,
			Types:            []string{"feat"},
		})
		outcome, err := v.Validate("feat: add x")
		require.NoError(t, err)
		assert.False(t, outcome.Valid)
		assert.Equal(t, "body-required", outcome.Violations[0].Rule)
	})

	t.Run("forbidden body present", func(t *testing.T) {
		t.Parallel()
		v := loadedValidator(t, &validate.RuleSet{
			SubjectMaxLength: 72,
			ForbidBody:       true,
			Types:            []string{"feat"},
		})
		outcome, err := v.Validate("feat: add x\n\nbody text")
		require.NoError(t, err)
		assert.False(t, outcome.Valid)
		assert.Equal(t, "body-forbidden", outcome.Violations[0].Rule)
	})

	t.Run("untyped prefix subjects", func(t *testing.T) {
		t.Parallel()
		v := loadedValidator(t, &validate.RuleSet{SubjectMaxLength: 75})

		outcome, err := v.Validate("net/http: fix connection reuse")
		require.NoError(t, err)
		assert.True(t, outcome.Valid)

		outcome, err = v.Validate("no prefix here")
		require.NoError(t, err)
		assert.False(t, outcome.Valid)
	})
}

func TestBindRules(t *testing.T) {
	t.Parallel()

	t.Run("replaces the active rule set", func(t *testing.T) {
		t.Parallel()
		v := loadedValidator(t, nil)

		subject := "feat: " + strings.Repeat("x", 50) // 56 characters

		outcome, err := v.Validate(subject)
		require.NoError(t, err)
		assert.True(t, outcome.Valid, "within the default 72-character limit")

		v.BindRules(&validate.RuleSet{SubjectMaxLength: 50, Types: []string{"feat"}})

		outcome, err = v.Validate(subject)
		require.NoError(t, err)
		assert.False(t, outcome.Valid, "over the bound 50-character limit")
		assert.Equal(t, "subject-max-length", outcome.Violations[0].Rule)
	})

	t.Run("marks an unloaded validator ready", func(t *testing.T) {
		t.Parallel()
		v := validate.NewConventional(nil)
		v.BindRules(validate.DefaultRuleSet())

		outcome, err := v.Validate("feat: add x")
		require.NoError(t, err)
		assert.True(t, outcome.Valid)
	})

	t.Run("nil rules fall back to the defaults", func(t *testing.T) {
		t.Parallel()
		v := validate.NewConventional(nil)
		v.BindRules(nil)

		outcome, err := v.Validate("feat: add x")
		require.NoError(t, err)
		assert.True(t, outcome.Valid)
	})
}

func TestSubjectLengthCountsRunes(t *testing.T) {
	t.Parallel()

	v := loadedValidator(t, nil)

	t.Run("multibyte subject within the limit", func(t *testing.T) {
		t.Parallel()
		subject := "feat: " + strings.Repeat("é", 60) // 66 runes, well over 72 bytes
		outcome, err := v.Validate(subject)
		require.NoError(t, err)
		assert.True(t, outcome.Valid)
		require.NotEmpty(t, outcome.Warnings)
		assert.Equal(t, "subject-length", outcome.Warnings[0].Rule)
		assert.Contains(t, outcome.Warnings[0].Message, "66 characters")
	})

	t.Run("multibyte subject over the limit", func(t *testing.T) {
		t.Parallel()
		subject := "feat: " + strings.Repeat("é", 67) // 73 runes
		outcome, err := v.Validate(subject)
		require.NoError(t, err)
		assert.False(t, outcome.Valid)
		assert.Equal(t, "subject-max-length", outcome.Violations[0].Rule)
		assert.Contains(t, outcome.Violations[0].Message, "73 characters")
	})

	t.Run("multibyte body line within the limit", func(t *testing.T) {
		t.Parallel()
		message := "feat: add x\n\n" + strings.Repeat("ü", 90) // 90 runes, 180 bytes
		outcome, err := v.Validate(message)
		require.NoError(t, err)
		assert.True(t, outcome.Valid)
		assert.Empty(t, outcome.Warnings)
	})
}

func TestValidateIsPureAndIdempotent(t *testing.T) {
	t.Parallel()

	v := loadedValidator(t, nil)
	message := "feat: Add retry logic."

	first, err := v.Validate(message)
	require.NoError(t, err)
	second, err := v.Validate(message)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatIssues(t *testing.T) {
	t.Parallel()

	v := loadedValidator(t, nil)
	outcome, err := v.Validate("feature: add x.")
	require.NoError(t, err)
	require.False(t, outcome.Valid)

	formatted := validate.FormatIssues(v, outcome.Violations)
	assert.Contains(t, formatted, "validation failed")
	assert.Contains(t, formatted, "type-unknown")
	assert.Contains(t, formatted, "subject-full-stop")
}
