package sampling

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// mockExecutor records the command it saw and returns canned output.
type mockExecutor struct {
	stdout []byte
	stderr []byte
	err    error

	gotArgs  []string
	gotStdin string
}

func (m *mockExecutor) Execute(_ context.Context, cmd *exec.Cmd) ([]byte, []byte, error) {
	m.gotArgs = cmd.Args
	if cmd.Stdin != nil {
		data, _ := io.ReadAll(cmd.Stdin)
		m.gotStdin = string(data)
	}
	return m.stdout, m.stderr, m.err
}

var _ CommandExecutor = (*mockExecutor)(nil)

func TestNewCLIRequester(t *testing.T) {
	t.Parallel()

	t.Run("empty command is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewCLIRequester("")
		assert.ErrorIs(t, err, scribeerrors.ErrEmptyValue)
	})

	t.Run("defaults to production executor", func(t *testing.T) {
		t.Parallel()
		r, err := NewCLIRequester("claude")
		require.NoError(t, err)
		assert.IsType(t, &DefaultExecutor{}, r.executor)
	})
}

func TestCreateMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed assistant reply", func(t *testing.T) {
		t.Parallel()
		executor := &mockExecutor{stdout: []byte("feat: add retry logic\n\n")}
		r, err := NewCLIRequester("claude", WithExecutor(executor))
		require.NoError(t, err)

		reply, err := r.CreateMessage(context.Background(), &Request{
			SystemPrompt: "be brief",
			UserPrompt:   "the diff",
		})
		require.NoError(t, err)
		assert.Equal(t, RoleAssistant, reply.Role)
		assert.Equal(t, "feat: add retry logic", reply.Text)
		assert.Equal(t, "the diff", executor.gotStdin)
	})

	t.Run("builds flags from request parameters", func(t *testing.T) {
		t.Parallel()
		executor := &mockExecutor{stdout: []byte("ok")}
		r, err := NewCLIRequester("claude", WithExecutor(executor), WithArgs([]string{"-p"}))
		require.NoError(t, err)

		_, err = r.CreateMessage(context.Background(), &Request{
			SystemPrompt: "rules",
			UserPrompt:   "diff",
			MaxTokens:    512,
			Temperature:  0.2,
			ModelHints:   []string{"haiku", "sonnet"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"claude", "-p",
			"--system-prompt", "rules",
			"--max-tokens", "512",
			"--temperature", "0.2",
			"--model", "haiku",
		}, executor.gotArgs)
	})

	t.Run("assigns a request ID when empty", func(t *testing.T) {
		t.Parallel()
		executor := &mockExecutor{stdout: []byte("ok")}
		r, err := NewCLIRequester("claude", WithExecutor(executor))
		require.NoError(t, err)

		req := &Request{UserPrompt: "diff"}
		_, err = r.CreateMessage(context.Background(), req)
		require.NoError(t, err)
		assert.NotEmpty(t, req.ID)
	})

	t.Run("transport failure collapses into generation failed", func(t *testing.T) {
		t.Parallel()
		executor := &mockExecutor{err: errors.New("exit status 1"), stderr: []byte("model overloaded")}
		r, err := NewCLIRequester("claude", WithExecutor(executor))
		require.NoError(t, err)

		_, err = r.CreateMessage(context.Background(), &Request{UserPrompt: "diff"})
		require.Error(t, err)
		assert.ErrorIs(t, err, scribeerrors.ErrGenerationFailed)
		assert.Contains(t, err.Error(), "model overloaded")
	})

	t.Run("empty reply text collapses into generation failed", func(t *testing.T) {
		t.Parallel()
		executor := &mockExecutor{stdout: []byte("   \n")}
		r, err := NewCLIRequester("claude", WithExecutor(executor))
		require.NoError(t, err)

		_, err = r.CreateMessage(context.Background(), &Request{UserPrompt: "diff"})
		assert.ErrorIs(t, err, scribeerrors.ErrGenerationFailed)
	})

	t.Run("nil request collapses into generation failed", func(t *testing.T) {
		t.Parallel()
		r, err := NewCLIRequester("claude", WithExecutor(&mockExecutor{stdout: []byte("ok")}))
		require.NoError(t, err)

		_, err = r.CreateMessage(context.Background(), nil)
		assert.ErrorIs(t, err, scribeerrors.ErrGenerationFailed)
	})

	t.Run("canceled context surfaces before execution", func(t *testing.T) {
		t.Parallel()
		r, err := NewCLIRequester("claude", WithExecutor(&mockExecutor{stdout: []byte("ok")}))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = r.CreateMessage(ctx, &Request{UserPrompt: "diff"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
