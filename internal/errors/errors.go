// Package errors provides centralized error handling for scribe.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be checked
// using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidRequest indicates that a commit or apply request failed
	// schema validation before any orchestration work started.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotGitRepo indicates the working directory is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrNothingToCommit indicates there are no staged or unstaged changes,
	// or that the staged diff is empty after staging.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrGitOperation indicates that a git command failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrCommitFailed indicates the final commit execution was rejected by
	// the repository after a message had already been validated and persisted.
	ErrCommitFailed = errors.New("commit failed")

	// ErrGenerationFailed indicates the message generation exchange failed.
	// Transport errors, malformed replies, and empty reply text all collapse
	// into this single condition.
	ErrGenerationFailed = errors.New("message generation failed")

	// ErrValidatorNotReady indicates Validate was called before LoadConfig.
	ErrValidatorNotReady = errors.New("validator not initialized")

	// ErrValidatorNotFound indicates no validator is registered under the
	// requested name.
	ErrValidatorNotFound = errors.New("validator not found")

	// ErrValidatorNil indicates a nil validator was passed to a registry.
	ErrValidatorNil = errors.New("validator cannot be nil")

	// ErrUnknownPreset indicates a style name did not match any preset.
	// Resolution falls back to the default preset; this sentinel exists for
	// callers that want strict lookups (e.g. `scribe preset show`).
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrOperationFailed is the generic wrapper for faults that carry no
	// more specific sentinel. The top-level orchestration handler maps
	// unknown failures to this condition.
	ErrOperationFailed = errors.New("operation failed")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrTemplateNotFound indicates the requested prompt template does not
	// exist in the embedded template set.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateExecution indicates a failure during template execution.
	ErrTemplateExecution = errors.New("template execution failed")
)
