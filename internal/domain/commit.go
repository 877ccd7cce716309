// Package domain provides shared domain types for the scribe commit
// orchestration system.
//
// IMPORTANT: This package may import internal/errors only. It MUST NOT
// import other internal packages.
package domain

import (
	"fmt"
	"strings"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// Style identifies a commit message preset.
type Style string

// Known preset styles. The set is closed; unknown values resolve to
// StyleDefault during orchestration.
const (
	StyleDefault  Style = "default"
	StyleDetailed Style = "detailed"
	StyleMinimal  Style = "minimal"
	StyleKernel   Style = "kernel"
)

// ValidStyles returns all recognized preset styles.
func ValidStyles() []Style {
	return []Style{StyleDefault, StyleDetailed, StyleMinimal, StyleKernel}
}

// IsValidStyle reports whether s names a known preset style.
func IsValidStyle(s Style) bool {
	for _, v := range ValidStyles() {
		if s == v {
			return true
		}
	}
	return false
}

// CommitRequest is the input to the full propose-and-apply workflow.
//
// Example JSON representation:
//
//	{
//	    "intent": "add retry logic to the uploader",
//	    "style": "default",
//	    "auto_commit": true,
//	    "auto_stage": true
//	}
type CommitRequest struct {
	// Intent is the free-text description of what the commit should convey.
	Intent string `json:"intent"`

	// Style selects a message preset. Empty means StyleDefault.
	Style Style `json:"style,omitempty"`

	// AutoCommit controls whether the validated message is committed.
	// Nil means true.
	AutoCommit *bool `json:"auto_commit,omitempty"`

	// AutoStage controls whether unstaged changes are staged automatically.
	// Nil means true.
	AutoStage *bool `json:"auto_stage,omitempty"`
}

// Validate checks the request shape. Invalid shape is a rejected input,
// never a workflow state.
func (r *CommitRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request is nil", scribeerrors.ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Intent) == "" {
		return fmt.Errorf("%w: intent is required", scribeerrors.ErrInvalidRequest)
	}
	return nil
}

// WantAutoCommit returns the auto_commit flag with its default applied.
func (r *CommitRequest) WantAutoCommit() bool {
	return r.AutoCommit == nil || *r.AutoCommit
}

// WantAutoStage returns the auto_stage flag with its default applied.
func (r *CommitRequest) WantAutoStage() bool {
	return r.AutoStage == nil || *r.AutoStage
}

// ApplyRequest is the input to the direct validate-and-apply entry point.
// It skips staging, diff retrieval, and generation: the caller supplies an
// already-authored message.
type ApplyRequest struct {
	// Message is the candidate commit message to validate and apply.
	Message string `json:"message"`

	// AutoCommit controls whether the validated message is committed.
	// Nil means true.
	AutoCommit *bool `json:"auto_commit,omitempty"`
}

// Validate checks the request shape.
func (r *ApplyRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request is nil", scribeerrors.ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: message is required", scribeerrors.ErrInvalidRequest)
	}
	return nil
}

// WantAutoCommit returns the auto_commit flag with its default applied.
func (r *ApplyRequest) WantAutoCommit() bool {
	return r.AutoCommit == nil || *r.AutoCommit
}

// Issue is a single named rule violation or warning produced by a validator.
type Issue struct {
	// Rule is the machine-readable rule name (e.g. "subject-max-length").
	Rule string `json:"rule"`

	// Message is the human-readable explanation.
	Message string `json:"message"`
}

// CommitResult is the single JSON-shaped terminal payload of an orchestration
// run. Every run ends in exactly one of these (or a hard fault surfaced as an
// error by the invocation surface).
//
// Example JSON representation:
//
//	{
//	    "success": true,
//	    "message": "feat(upload): add retry logic",
//	    "style": "default",
//	    "staged_count": 2,
//	    "auto_committed": true,
//	    "commit_sha": "a1b2c3d"
//	}
type CommitResult struct {
	// Success is false for validation rejections, true otherwise.
	Success bool `json:"success"`

	// NeedsConfirmation is true when unstaged files exist, nothing is
	// staged, and auto_stage was disabled. The run ended without error but
	// requires a new invocation to proceed.
	NeedsConfirmation bool `json:"needs_confirmation,omitempty"`

	// UnstagedFiles lists the files awaiting confirmation when
	// NeedsConfirmation is true.
	UnstagedFiles []string `json:"unstaged_files,omitempty"`

	// Instruction tells the caller how to proceed on the confirmation path.
	Instruction string `json:"instruction,omitempty"`

	// Message is the commit message: the validated message on success, or
	// the rejected candidate echoed back unchanged on validation failure.
	Message string `json:"message,omitempty"`

	// Style is the preset that was actually used after fallback resolution.
	Style Style `json:"style,omitempty"`

	// Violations lists rule violations when validation rejected the message.
	Violations []Issue `json:"violations,omitempty"`

	// Warnings lists non-fatal rule warnings from validation.
	Warnings []Issue `json:"warnings,omitempty"`

	// StagedCount is the number of files newly staged by this run.
	StagedCount int `json:"staged_count"`

	// AutoCommitted is true if a commit was actually performed.
	AutoCommitted bool `json:"auto_committed"`

	// CommitSHA identifies the commit when AutoCommitted is true.
	CommitSHA string `json:"commit_sha,omitempty"`

	// Error is the human-formatted explanation when Success is false.
	Error string `json:"error,omitempty"`
}
