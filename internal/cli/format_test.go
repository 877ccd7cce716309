package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/scribe/internal/domain"
)

func TestRenderResultJSON(t *testing.T) {
	t.Parallel()

	result := &domain.CommitResult{
		Success:       true,
		Message:       "feat: add retry logic",
		Style:         domain.StyleDefault,
		StagedCount:   2,
		AutoCommitted: true,
		CommitSHA:     "a1b2c3d",
	}

	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, OutputJSON, result))

	var decoded domain.CommitResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)
}

func TestRenderResultText(t *testing.T) {
	t.Parallel()

	t.Run("committed", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, renderResult(&buf, OutputText, &domain.CommitResult{
			Success:       true,
			Message:       "feat: add retry logic",
			StagedCount:   2,
			AutoCommitted: true,
			CommitSHA:     "a1b2c3d",
		}))

		assert.Contains(t, buf.String(), "feat: add retry logic")
		assert.Contains(t, buf.String(), "Staged 2 file(s)")
		assert.Contains(t, buf.String(), "Committed as a1b2c3d")
	})

	t.Run("saved without committing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, renderResult(&buf, OutputText, &domain.CommitResult{
			Success: true,
			Message: "feat: add retry logic",
		}))

		assert.Contains(t, buf.String(), "commit when ready")
		assert.NotContains(t, buf.String(), "Committed as")
	})

	t.Run("needs confirmation", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, renderResult(&buf, OutputText, &domain.CommitResult{
			Success:           true,
			NeedsConfirmation: true,
			UnstagedFiles:     []string{"a.go", "b.go"},
			Instruction:       "re-invoke with auto_stage enabled",
		}))

		assert.Contains(t, buf.String(), "a.go")
		assert.Contains(t, buf.String(), "b.go")
		assert.Contains(t, buf.String(), "re-invoke with auto_stage enabled")
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, renderResult(&buf, OutputText, &domain.CommitResult{
			Success:    false,
			Message:    "Bad Message.",
			Violations: []domain.Issue{{Rule: "subject-format", Message: "no type"}},
			Error:      "commit message validation failed:\n  ✗ [subject-format] no type",
		}))

		assert.Contains(t, buf.String(), "rejected")
		assert.Contains(t, buf.String(), "Bad Message.")
		assert.Contains(t, buf.String(), "subject-format")
	})

	t.Run("warnings are shown", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, renderResult(&buf, OutputText, &domain.CommitResult{
			Success:  true,
			Message:  "feat: something fairly long in the subject line",
			Warnings: []domain.Issue{{Rule: "subject-length", Message: "subject longer than 50 characters"}},
		}))

		assert.Contains(t, buf.String(), "warning: [subject-length]")
	})
}
