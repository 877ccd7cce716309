// Package git provides the repository adapter for scribe.
// This file implements the CLIRunner which wraps git CLI commands.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mrz1836/scribe/internal/ctxutil"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// PendingMessageFile is the name of the durable pending commit message slot
// inside the repository's .git directory.
const PendingMessageFile = "SCRIBE_COMMIT_MSG"

// Compile-time interface check.
var _ Runner = (*CLIRunner)(nil)

// CLIRunner implements Runner using the git CLI.
type CLIRunner struct {
	workDir string // Working directory for git commands
}

// NewRunner creates a new CLIRunner for the given working directory.
// The directory is not required to be a git repository; the orchestrator
// performs that check itself via IsRepository so it can report the condition
// as a structured payload instead of a constructor failure.
func NewRunner(workDir string) (*CLIRunner, error) {
	if workDir == "" {
		return nil, fmt.Errorf("work directory cannot be empty: %w", scribeerrors.ErrEmptyValue)
	}
	return &CLIRunner{workDir: workDir}, nil
}

// IsRepository reports whether the working directory is inside a git work tree.
func (r *CLIRunner) IsRepository(ctx context.Context) bool {
	output, err := r.runGitCommand(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && output == "true"
}

// Status returns the current working tree status.
func (r *CLIRunner) Status(ctx context.Context) (*Status, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	// Get porcelain status for parsing
	output, err := r.runGitCommand(ctx, "status", "--porcelain", "-uall", "--branch")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return parseGitStatus(output), nil
}

// Add stages files for commit.
func (r *CLIRunner) Add(ctx context.Context, paths []string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	args := []string{"add"}
	if len(paths) == 0 {
		// Stage all changes
		args = append(args, "-A")
	} else {
		args = append(args, "--")
		args = append(args, paths...)
	}

	_, err := r.runGitCommand(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to add files: %w", err)
	}

	return nil
}

// DiffStaged returns the diff of staged (cached) changes.
// This is equivalent to `git diff --cached`.
func (r *CLIRunner) DiffStaged(ctx context.Context) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	output, err := r.runGitCommand(ctx, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}

	return output, nil
}

// PersistPendingMessage writes the message to .git/SCRIBE_COMMIT_MSG.
// The slot survives a declined commit so editors and IDE integrations can
// pick the message up later.
func (r *CLIRunner) PersistPendingMessage(ctx context.Context, message string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if message == "" {
		return fmt.Errorf("pending message cannot be empty: %w", scribeerrors.ErrEmptyValue)
	}

	gitDir, err := r.runGitCommand(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return fmt.Errorf("failed to locate git dir: %w", err)
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(r.workDir, gitDir)
	}

	path := filepath.Join(gitDir, PendingMessageFile)
	if err := os.WriteFile(path, []byte(message+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write pending message: %w", err)
	}

	return nil
}

// Commit creates a commit with the given message and returns its short hash.
func (r *CLIRunner) Commit(ctx context.Context, message string) (string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", err
	}

	if message == "" {
		return "", fmt.Errorf("commit message cannot be empty: %w", scribeerrors.ErrEmptyValue)
	}

	// Use --cleanup=strip to handle formatting (removes trailing whitespace, leading/trailing blank lines)
	_, err := r.runGitCommand(ctx, "commit", "-m", message, "--cleanup=strip")
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	// We just created the commit, so HEAD is ours
	hash, err := r.runGitCommand(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve commit hash: %w", err)
	}

	return hash, nil
}

// runGitCommand executes a git command in the runner's working directory and
// returns its trimmed stdout. Failures are wrapped with ErrGitOperation and
// carry stderr for debugging; context cancellation surfaces as the context
// error.
func (r *CLIRunner) runGitCommand(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("git %s failed: %s: %w", args[0], strings.TrimSpace(stderr.String()), scribeerrors.ErrGitOperation)
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], scribeerrors.ErrGitOperation)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// parseGitStatus parses git status --porcelain --branch output.
func parseGitStatus(output string) *Status {
	status := &Status{
		Staged:    []FileChange{},
		Unstaged:  []FileChange{},
		Untracked: []string{},
	}

	for _, line := range strings.Split(output, "\n") {
		if len(line) < 2 {
			continue
		}

		// Branch line: ## branch...origin/branch [ahead N, behind M]
		if strings.HasPrefix(line, "## ") {
			branch := strings.TrimPrefix(line, "## ")
			if idx := strings.Index(branch, "..."); idx != -1 {
				branch = branch[:idx]
			}
			status.Branch = branch
			continue
		}

		if len(line) < 4 {
			continue
		}

		// File status lines: XY PATH or XY ORIG -> DEST (for renames)
		indexStatus := line[0]
		workTreeStatus := line[1]
		path := strings.TrimSpace(line[3:])

		var oldPath string
		if strings.Contains(path, " -> ") {
			parts := strings.SplitN(path, " -> ", 2)
			oldPath = parts[0]
			path = parts[1]
		}

		// Untracked files
		if indexStatus == '?' && workTreeStatus == '?' {
			status.Untracked = append(status.Untracked, path)
			continue
		}

		// Staged changes (index status)
		if indexStatus != ' ' && indexStatus != '?' {
			status.Staged = append(status.Staged, FileChange{
				Path:    path,
				Status:  ChangeType(string(indexStatus)),
				OldPath: oldPath,
			})
		}

		// Unstaged changes (work tree status)
		if workTreeStatus != ' ' && workTreeStatus != '?' {
			status.Unstaged = append(status.Unstaged, FileChange{
				Path:    path,
				Status:  ChangeType(string(workTreeStatus)),
				OldPath: oldPath,
			})
		}
	}

	return status
}
