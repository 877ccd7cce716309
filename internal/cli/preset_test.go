package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
	"github.com/mrz1836/scribe/internal/preset"
)

// newOutputCmd builds a bare command carrying only the output flag, for
// driving the run helpers directly.
func newOutputCmd(format string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("output", format, "")
	return cmd
}

func TestRunPresetList(t *testing.T) {
	t.Parallel()

	t.Run("text lists every preset with a description", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, runPresetList(newOutputCmd(OutputText), &buf))

		for _, name := range []string{"default", "detailed", "minimal", "kernel"} {
			assert.Contains(t, buf.String(), name)
		}
	})

	t.Run("json is a parseable config array", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, runPresetList(newOutputCmd(OutputJSON), &buf))

		var configs []preset.Config
		require.NoError(t, json.Unmarshal(buf.Bytes(), &configs))
		assert.Len(t, configs, 4)
	})
}

func TestRunPresetShow(t *testing.T) {
	t.Parallel()

	t.Run("known preset renders as yaml", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, runPresetShow(newOutputCmd(OutputText), &buf, "minimal"))

		assert.Contains(t, buf.String(), "name: minimal")
		assert.Contains(t, buf.String(), "forbid_body: true")
	})

	t.Run("known preset renders as json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, runPresetShow(newOutputCmd(OutputJSON), &buf, "kernel"))

		var cfg preset.Config
		require.NoError(t, json.Unmarshal(buf.Bytes(), &cfg))
		assert.Equal(t, 75, cfg.SubjectMaxLength)
	})

	t.Run("unknown preset fails with exit code 2 semantics", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := runPresetShow(newOutputCmd(OutputText), &buf, "limerick")
		require.Error(t, err)
		assert.ErrorIs(t, err, scribeerrors.ErrUnknownPreset)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestRunValidatorList(t *testing.T) {
	t.Parallel()

	t.Run("text marks the default validator", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, runValidatorList(newOutputCmd(OutputText), &buf))
		assert.Contains(t, buf.String(), "* conventional")
	})

	t.Run("json is a name array", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, runValidatorList(newOutputCmd(OutputJSON), &buf))

		var names []string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &names))
		assert.Equal(t, []string{"conventional"}, names)
	})
}
