// Package git provides the repository adapter for scribe.
// This file defines types used by the Runner.
package git

// Status represents the current state of a Git working tree.
type Status struct {
	Staged    []FileChange // Files staged for commit
	Unstaged  []FileChange // Modified but not staged
	Untracked []string     // Untracked files
	Branch    string       // Current branch name
}

// FileChange represents a changed file in the working tree.
type FileChange struct {
	Path    string     // File path relative to repo root
	Status  ChangeType // Type of change (Added, Modified, Deleted, etc.)
	OldPath string     // For renamed files, the original path
}

// ChangeType represents the type of change for a file.
type ChangeType string

// Change type constants for git status.
const (
	ChangeAdded    ChangeType = "A"
	ChangeModified ChangeType = "M"
	ChangeDeleted  ChangeType = "D"
	ChangeRenamed  ChangeType = "R"
	ChangeCopied   ChangeType = "C"
	ChangeUnmerged ChangeType = "U"
)

// HasStagedChanges returns true if there are staged changes ready to commit.
func (s *Status) HasStagedChanges() bool {
	return len(s.Staged) > 0
}

// UnstagedPaths returns the paths of all unstaged and untracked files.
// These are the files an auto-stage run passes to Add, and the files a
// confirmation payload reports back to the caller.
func (s *Status) UnstagedPaths() []string {
	paths := make([]string, 0, len(s.Unstaged)+len(s.Untracked))
	for _, f := range s.Unstaged {
		paths = append(paths, f.Path)
	}
	paths = append(paths, s.Untracked...)
	return paths
}

// StagedPaths returns the paths of all staged files.
func (s *Status) StagedPaths() []string {
	paths := make([]string, 0, len(s.Staged))
	for _, f := range s.Staged {
		paths = append(paths, f.Path)
	}
	return paths
}
