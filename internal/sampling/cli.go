// Package sampling provides the message generation boundary for scribe.
// This file implements the CLIRequester which shells out to an AI CLI.
package sampling

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/scribe/internal/ctxutil"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// Compile-time interface check.
var _ Requester = (*CLIRequester)(nil)

// CommandExecutor abstracts command execution for testing.
// The production implementation uses exec.Cmd to run subprocesses,
// while tests can provide a mock implementation.
type CommandExecutor interface {
	// Execute runs the command and returns stdout, stderr, and any error.
	// The context is passed for mock implementations that need cancellation
	// awareness.
	Execute(ctx context.Context, cmd *exec.Cmd) (stdout, stderr []byte, err error)
}

// DefaultExecutor is the production implementation of CommandExecutor.
type DefaultExecutor struct{}

// Execute runs the command and captures its output.
func (e *DefaultExecutor) Execute(_ context.Context, cmd *exec.Cmd) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// CLIRequester implements Requester by invoking an external AI CLI.
// The user prompt is passed on stdin; the reply is the CLI's stdout.
type CLIRequester struct {
	command  string
	args     []string
	executor CommandExecutor
	logger   zerolog.Logger
}

// CLIRequesterOption configures a CLIRequester.
type CLIRequesterOption func(*CLIRequester)

// WithExecutor sets a custom command executor, primarily for tests.
func WithExecutor(executor CommandExecutor) CLIRequesterOption {
	return func(r *CLIRequester) {
		if executor != nil {
			r.executor = executor
		}
	}
}

// WithLogger sets the logger for the requester.
func WithLogger(logger zerolog.Logger) CLIRequesterOption {
	return func(r *CLIRequester) {
		r.logger = logger
	}
}

// WithArgs sets extra arguments placed before the generated flags.
func WithArgs(args []string) CLIRequesterOption {
	return func(r *CLIRequester) {
		r.args = args
	}
}

// NewCLIRequester creates a CLI-backed requester for the given command.
func NewCLIRequester(command string, opts ...CLIRequesterOption) (*CLIRequester, error) {
	if command == "" {
		return nil, fmt.Errorf("requester command cannot be empty: %w", scribeerrors.ErrEmptyValue)
	}

	r := &CLIRequester{
		command:  command,
		executor: &DefaultExecutor{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// CreateMessage performs one generation exchange.
// Transport failures, a missing reply, and empty reply text all collapse into
// ErrGenerationFailed; the caller does not distinguish them further.
func (r *CLIRequester) CreateMessage(ctx context.Context, req *Request) (*Reply, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", scribeerrors.ErrGenerationFailed)
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	cmd := r.buildCommand(ctx, req)
	cmd.Stdin = strings.NewReader(req.UserPrompt)

	r.logger.Debug().
		Str("request_id", req.ID).
		Str("command", r.command).
		Int("max_tokens", req.MaxTokens).
		Msg("sending generation request")

	stdout, stderr, err := r.executor.Execute(ctx, cmd)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", scribeerrors.ErrGenerationFailed, ctx.Err())
		}
		if len(stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", scribeerrors.ErrGenerationFailed, strings.TrimSpace(string(stderr)))
		}
		return nil, fmt.Errorf("%w: %w", scribeerrors.ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(string(stdout))
	if text == "" {
		return nil, fmt.Errorf("%w: empty reply text", scribeerrors.ErrGenerationFailed)
	}

	r.logger.Debug().
		Str("request_id", req.ID).
		Int("reply_bytes", len(text)).
		Msg("generation reply received")

	return &Reply{Role: RoleAssistant, Text: text}, nil
}

// buildCommand assembles the CLI invocation for a request.
func (r *CLIRequester) buildCommand(ctx context.Context, req *Request) *exec.Cmd {
	args := make([]string, 0, len(r.args)+8)
	args = append(args, r.args...)

	if req.SystemPrompt != "" {
		args = append(args, "--system-prompt", req.SystemPrompt)
	}
	if req.MaxTokens > 0 {
		args = append(args, "--max-tokens", strconv.Itoa(req.MaxTokens))
	}
	if req.Temperature > 0 {
		args = append(args, "--temperature", strconv.FormatFloat(req.Temperature, 'f', -1, 64))
	}
	if len(req.ModelHints) > 0 {
		args = append(args, "--model", req.ModelHints[0])
	}

	return exec.CommandContext(ctx, r.command, args...) //#nosec G204 -- command comes from configuration, not request input
}
