package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/scribe/internal/domain"
)

// applyFlags holds the flags for the apply command.
type applyFlags struct {
	noCommit bool
}

// AddApplyCommand adds the apply command to the root command.
func AddApplyCommand(root *cobra.Command) {
	root.AddCommand(newApplyCmd())
}

func newApplyCmd() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <message>",
		Short: "Validate and apply an already-written commit message",
		Long: `Validate a commit message you wrote yourself and apply it to the staged
changes, skipping generation entirely.

Examples:
  scribe apply "feat(upload): add retry logic"
  scribe apply --no-commit "fix(parser): handle empty input"

Exit codes:
  0: Success (including validation rejection, reported in the payload)
  1: General error
  2: Invalid input`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), cmd, os.Stdout, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.noCommit, "no-commit", false, "validate and save the message without committing")

	return cmd
}

// runApply executes the apply command.
func runApply(ctx context.Context, cmd *cobra.Command, w io.Writer, flags *applyFlags, message string) error {
	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()

	cfg := loadConfig(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	orch, err := buildOrchestrator(workDir, cfg, logger)
	if err != nil {
		return err
	}

	req := &domain.ApplyRequest{Message: message}
	if flags.noCommit || !cfg.Commit.AutoCommit {
		req.AutoCommit = boolPtr(false)
	}

	result, err := orch.ApplyMessage(ctx, req)
	if err != nil {
		return err
	}

	return renderResult(w, outputFormat, result)
}
