// Package git provides the repository adapter for scribe.
// This file defines the Runner interface consumed by the orchestrator.
package git

import "context"

// Runner defines the repository operations the commit orchestrator depends on.
// All operations run in the runner's working directory and use context for
// cancellation.
type Runner interface {
	// IsRepository reports whether the working directory is inside a git
	// repository work tree.
	IsRepository(ctx context.Context) bool

	// Status returns the current working tree status including staged,
	// unstaged, and untracked files.
	Status(ctx context.Context) (*Status, error)

	// Add stages files for commit. If paths is empty, stages all changes.
	Add(ctx context.Context, paths []string) error

	// DiffStaged returns the diff of staged (cached) changes.
	DiffStaged(ctx context.Context) (string, error)

	// PersistPendingMessage writes the message to the durable pending commit
	// message slot so external tooling can pick it up even when the commit
	// itself is declined.
	PersistPendingMessage(ctx context.Context, message string) error

	// Commit creates a commit with the given message and returns its short
	// hash.
	Commit(ctx context.Context, message string) (string, error)
}
