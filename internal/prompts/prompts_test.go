package prompts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
	"github.com/mrz1836/scribe/internal/prompts"
)

func TestEmbeddedTemplatesAreRegistered(t *testing.T) {
	t.Parallel()

	assert.True(t, prompts.Exists(prompts.CommitSystem))
	assert.True(t, prompts.Exists(prompts.CommitUser))
	assert.False(t, prompts.Exists(prompts.PromptID("nope")))
	assert.Len(t, prompts.List(), 2)
}

func TestRenderCommitSystem(t *testing.T) {
	t.Parallel()

	data := prompts.CommitSystemData{
		StyleName:         "default",
		Instructions:      "Write a conventional commit message.",
		SubjectMaxLength:  72,
		BodyLineMaxLength: 100,
		Types:             []string{"feat", "fix"},
	}

	out, err := prompts.Render(prompts.CommitSystem, data)
	require.NoError(t, err)

	assert.Contains(t, out, `"default" style`)
	assert.Contains(t, out, "Write a conventional commit message.")
	assert.Contains(t, out, "under 72 characters")
	assert.Contains(t, out, "feat, fix")
	assert.NotContains(t, out, "subject line only", "body is allowed by default")
}

func TestRenderCommitSystemBodyPolicies(t *testing.T) {
	t.Parallel()

	t.Run("forbidden body", func(t *testing.T) {
		t.Parallel()
		out, err := prompts.Render(prompts.CommitSystem, prompts.CommitSystemData{
			StyleName:        "minimal",
			SubjectMaxLength: 50,
			ForbidBody:       true,
		})
		require.NoError(t, err)
		assert.Contains(t, out, "subject line only")
	})

	t.Run("required body", func(t *testing.T) {
		t.Parallel()
		out, err := prompts.Render(prompts.CommitSystem, prompts.CommitSystemData{
			StyleName:         "detailed",
			SubjectMaxLength:  72,
			BodyLineMaxLength: 100,
			RequireBody:       true,
		})
		require.NoError(t, err)
		assert.Contains(t, out, "A body is required.")
	})
}

func TestRenderCommitUser(t *testing.T) {
	t.Parallel()

	data := prompts.CommitUserData{
		Intent:    "quick commit",
		Diff:      "diff --git a/a.txt b/a.txt\n+hello",
		StyleName: "default",
	}

	out, err := prompts.Render(prompts.CommitUser, data)
	require.NoError(t, err)

	assert.Contains(t, out, `"quick commit"`)
	assert.Contains(t, out, "+hello")
	assert.Contains(t, out, `"default" style`)
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := prompts.Render(prompts.PromptID("missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, scribeerrors.ErrTemplateNotFound)
}
