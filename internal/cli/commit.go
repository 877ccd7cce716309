package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/scribe/internal/domain"
)

// commitFlags holds the flags for the commit command.
type commitFlags struct {
	style    string
	noCommit bool
	noStage  bool
}

// AddCommitCommand adds the commit command to the root command.
func AddCommitCommand(root *cobra.Command) {
	root.AddCommand(newCommitCmd())
}

func newCommitCmd() *cobra.Command {
	flags := &commitFlags{}

	cmd := &cobra.Command{
		Use:   "commit <intent>...",
		Short: "Generate, validate, and apply a commit message",
		Long: `Generate a commit message from a natural-language intent, validate it
against the selected preset, and commit the staged changes.

Unstaged changes are staged automatically unless --no-stage is given; with
--no-stage and nothing staged, the files needing confirmation are listed
instead.

Examples:
  scribe commit "add retry logic to the uploader"
  scribe commit --style detailed "rework the cache eviction policy"
  scribe commit --no-commit "quick fix"     # validate and save only
  scribe commit --no-stage "commit what I staged" --output json

Exit codes:
  0: Success (including validation rejection, reported in the payload)
  1: General error
  2: Invalid input`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd.Context(), cmd, os.Stdout, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.style, "style", "s", "", "message preset (default, detailed, minimal, kernel)")
	cmd.Flags().BoolVar(&flags.noCommit, "no-commit", false, "validate and save the message without committing")
	cmd.Flags().BoolVar(&flags.noStage, "no-stage", false, "do not stage unstaged changes automatically")

	return cmd
}

// runCommit executes the commit command.
func runCommit(ctx context.Context, cmd *cobra.Command, w io.Writer, flags *commitFlags, args []string) error {
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

	req := &domain.CommitRequest{
		Intent: strings.Join(args, " "),
		Style:  resolveStyle(flags.style, cfg.Commit.DefaultStyle),
	}
	if flags.noCommit || !cfg.Commit.AutoCommit {
		req.AutoCommit = boolPtr(false)
	}
	if flags.noStage || !cfg.Commit.AutoStage {
		req.AutoStage = boolPtr(false)
	}

	result, err := orch.ProposeCommit(ctx, req)
	if err != nil {
		return err
	}

	return renderResult(w, outputFormat, result)
}

// resolveStyle applies the configured default when the flag names no style.
func resolveStyle(flagStyle, configStyle string) domain.Style {
	if flagStyle != "" {
		return domain.Style(flagStyle)
	}
	return domain.Style(configStyle)
}

func boolPtr(b bool) *bool { return &b }
