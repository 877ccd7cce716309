// Package orchestrator implements the commit orchestration workflow for
// scribe.
//
// One orchestration run turns a natural-language commit request into a
// validated, conventional-format commit: it inspects repository state,
// decides what to stage, requests an externally generated commit message,
// validates the candidate, and optionally finalizes the commit. Runs are
// sequential; callers must not invoke the orchestrator concurrently against
// the same working tree.
package orchestrator

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/scribe/internal/ctxutil"
	"github.com/mrz1836/scribe/internal/domain"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
	"github.com/mrz1836/scribe/internal/git"
	"github.com/mrz1836/scribe/internal/preset"
	"github.com/mrz1836/scribe/internal/prompts"
	"github.com/mrz1836/scribe/internal/sampling"
	"github.com/mrz1836/scribe/internal/validate"
)

// confirmationInstruction tells callers how to proceed when unstaged changes
// need explicit approval.
const confirmationInstruction = "unstaged changes need staging before a commit can be proposed; re-invoke with auto_stage enabled to stage them"

// Default generation parameters.
const (
	defaultGenerationTimeout = 60 * time.Second
	defaultMaxTokens         = 1024
	defaultTemperature       = 0.2
)

// Orchestrator composes the repository adapter, preset catalog, validator
// registry, and generation requester into the end-to-end commit workflow.
// All collaborators are injected; the orchestrator owns no global state.
type Orchestrator struct {
	repo          git.Runner
	presets       *preset.Catalog
	validators    *validate.Registry
	requester     sampling.Requester
	logger        zerolog.Logger
	validatorName string
	genTimeout    time.Duration
	maxTokens     int
	temperature   float64
	modelHints    []string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for the orchestrator.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithValidatorName selects which registered validator judges candidates.
// If not set, validate.DefaultValidatorName is used.
func WithValidatorName(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.validatorName = name
		}
	}
}

// WithGenerationTimeout bounds the wait for the generation reply.
// A non-responding peer surfaces as a generation failure instead of blocking
// the run indefinitely. If not set, a default of 60 seconds is used.
func WithGenerationTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.genTimeout = timeout
		}
	}
}

// WithGenerationParams sets the token budget and temperature for requests.
func WithGenerationParams(maxTokens int, temperature float64) Option {
	return func(o *Orchestrator) {
		if maxTokens > 0 {
			o.maxTokens = maxTokens
		}
		if temperature >= 0 {
			o.temperature = temperature
		}
	}
}

// WithModelHints sets optional model preferences passed to the requester.
func WithModelHints(hints []string) Option {
	return func(o *Orchestrator) {
		o.modelHints = hints
	}
}

// New creates an Orchestrator with the given collaborators.
func New(repo git.Runner, presets *preset.Catalog, validators *validate.Registry, requester sampling.Requester, opts ...Option) (*Orchestrator, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository runner cannot be nil: %w", scribeerrors.ErrEmptyValue)
	}
	if presets == nil {
		return nil, fmt.Errorf("preset catalog cannot be nil: %w", scribeerrors.ErrEmptyValue)
	}
	if validators == nil {
		return nil, fmt.Errorf("validator registry cannot be nil: %w", scribeerrors.ErrEmptyValue)
	}
	if requester == nil {
		return nil, fmt.Errorf("generation requester cannot be nil: %w", scribeerrors.ErrEmptyValue)
	}

	o := &Orchestrator{
		repo:          repo,
		presets:       presets,
		validators:    validators,
		requester:     requester,
		logger:        zerolog.Nop(),
		validatorName: validate.DefaultValidatorName,
		genTimeout:    defaultGenerationTimeout,
		maxTokens:     defaultMaxTokens,
		temperature:   defaultTemperature,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// ProposeCommit runs the full workflow: state checks, staging decision, diff
// retrieval, message generation, validation, persistence, and the commit
// decision.
//
// Validation rejection is a returned payload with Success=false, not an
// error: the caller should retry with different input. Errors indicate
// precondition failures or system faults.
func (o *Orchestrator) ProposeCommit(ctx context.Context, req *domain.CommitRequest) (*domain.CommitResult, error) {
	result, err := o.proposeCommit(ctx, req)
	return result, o.wrapFault(err)
}

// ApplyMessage runs the tail of the workflow for an already-authored
// message: validation, persistence, and the commit decision. Staging, diff
// retrieval, and generation are skipped.
func (o *Orchestrator) ApplyMessage(ctx context.Context, req *domain.ApplyRequest) (*domain.CommitResult, error) {
	result, err := o.applyMessage(ctx, req)
	return result, o.wrapFault(err)
}

func (o *Orchestrator) proposeCommit(ctx context.Context, req *domain.CommitRequest) (*domain.CommitResult, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := o.logger.With().Str("run_id", runID).Logger()
	logger.Debug().Str("style", string(req.Style)).Msg("starting commit orchestration")

	// Step 1: repository check. Terminal, no retry.
	if !o.repo.IsRepository(ctx) {
		return nil, scribeerrors.ErrNotGitRepo
	}

	// Steps 2-3: repository state is recomputed on every run, never cached
	status, err := o.repo.Status(ctx)
	if err != nil {
		return nil, err
	}

	stagedCount := 0
	unstaged := status.UnstagedPaths()

	switch {
	case !status.HasStagedChanges() && len(unstaged) == 0:
		return nil, scribeerrors.ErrNothingToCommit

	case len(unstaged) > 0 && req.WantAutoStage():
		if err = o.repo.Add(ctx, unstaged); err != nil {
			return nil, err
		}
		stagedCount = len(unstaged)
		logger.Debug().Int("staged_count", stagedCount).Msg("staged unstaged changes")

	case len(unstaged) > 0 && !status.HasStagedChanges():
		// Successful but unresolved: the caller must confirm staging by
		// re-invoking with auto_stage enabled.
		logger.Debug().Int("unstaged_count", len(unstaged)).Msg("returning confirmation request")
		return &domain.CommitResult{
			Success:           true,
			NeedsConfirmation: true,
			UnstagedFiles:     unstaged,
			Instruction:       confirmationInstruction,
		}, nil
	}

	// Step 4: diff retrieval
	diff, err := o.repo.DiffStaged(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(diff) == "" {
		return nil, scribeerrors.ErrNothingToCommit
	}

	// Step 5: preset selection with deterministic default fallback
	cfg, fellBack := o.presets.Resolve(req.Style)
	if fellBack {
		logger.Warn().Str("requested", string(req.Style)).Str("used", string(cfg.Name)).Msg("unknown style, using default preset")
	}

	// Step 6: generation request
	candidate, err := o.generate(ctx, logger, runID, cfg, req.Intent, diff)
	if err != nil {
		return nil, err
	}

	// Steps 7-9: validate, persist, commit. The validator judges the
	// candidate against the same preset rules the generation prompt carried.
	result, err := o.validateAndApply(ctx, logger, candidate, req.WantAutoCommit(), presetRules(cfg))
	if err != nil {
		return nil, err
	}
	result.Style = cfg.Name
	result.StagedCount = stagedCount
	return result, nil
}

func (o *Orchestrator) applyMessage(ctx context.Context, req *domain.ApplyRequest) (*domain.CommitResult, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !o.repo.IsRepository(ctx) {
		return nil, scribeerrors.ErrNotGitRepo
	}

	runID := uuid.NewString()
	logger := o.logger.With().Str("run_id", runID).Logger()
	logger.Debug().Msg("applying authored commit message")

	// Authored messages carry no style, so the default rules apply.
	return o.validateAndApply(ctx, logger, req.Message, req.WantAutoCommit(), validate.DefaultRuleSet())
}

// presetRules translates a preset's formatting limits into the validator's
// rule set so generation and validation enforce the same contract.
func presetRules(cfg preset.Config) *validate.RuleSet {
	return &validate.RuleSet{
		SubjectMaxLength:  cfg.SubjectMaxLength,
		SubjectWarnLength: cfg.SubjectWarnLength,
		BodyLineMaxLength: cfg.BodyLineMaxLength,
		RequireBody:       cfg.RequireBody,
		ForbidBody:        cfg.ForbidBody,
		Types:             cfg.Types,
	}
}

// generate builds the prompts, issues the sampling request, and extracts the
// candidate message. The exchange is bounded by the configured timeout so a
// hanging peer cannot block the run forever.
func (o *Orchestrator) generate(ctx context.Context, logger zerolog.Logger, runID string, cfg preset.Config, intent, diff string) (string, error) {
	systemPrompt, err := prompts.Render(prompts.CommitSystem, prompts.CommitSystemData{
		StyleName:         string(cfg.Name),
		Instructions:      cfg.Instructions,
		SubjectMaxLength:  cfg.SubjectMaxLength,
		BodyLineMaxLength: cfg.BodyLineMaxLength,
		RequireBody:       cfg.RequireBody,
		ForbidBody:        cfg.ForbidBody,
		Types:             cfg.Types,
	})
	if err != nil {
		return "", err
	}

	userPrompt, err := prompts.Render(prompts.CommitUser, prompts.CommitUserData{
		Intent:    intent,
		Diff:      diff,
		StyleName: string(cfg.Name),
	})
	if err != nil {
		return "", err
	}

	genCtx, cancel := context.WithTimeout(ctx, o.genTimeout)
	defer cancel()

	start := time.Now()
	reply, err := o.requester.CreateMessage(genCtx, &sampling.Request{
		ID:           runID,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    o.maxTokens,
		Temperature:  o.temperature,
		ModelHints:   o.modelHints,
	})
	latency := time.Since(start)

	// Transport failures, timeouts, malformed replies, and empty text all
	// collapse into the single generation-failed condition.
	if err != nil {
		logger.Warn().Err(err).Dur("latency", latency).Msg("generation request failed")
		if stderrors.Is(err, scribeerrors.ErrGenerationFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", scribeerrors.ErrGenerationFailed, err)
	}
	if reply == nil || reply.Role != sampling.RoleAssistant {
		return "", fmt.Errorf("%w: malformed reply", scribeerrors.ErrGenerationFailed)
	}

	candidate := strings.TrimSpace(reply.Text)
	if candidate == "" {
		return "", fmt.Errorf("%w: empty reply text", scribeerrors.ErrGenerationFailed)
	}

	logger.Debug().Dur("latency", latency).Int("candidate_bytes", len(candidate)).Msg("generation reply received")
	return candidate, nil
}

// validateAndApply runs steps 7-9: validation, persistence, and the commit
// decision. An unvalidated message is never persisted or committed.
func (o *Orchestrator) validateAndApply(ctx context.Context, logger zerolog.Logger, candidate string, autoCommit bool, rules *validate.RuleSet) (*domain.CommitResult, error) {
	validator, err := o.validators.Get(o.validatorName)
	if err != nil {
		return nil, err
	}
	if bound, ok := validator.(validate.RuleBound); ok {
		bound.BindRules(rules)
	}
	if err = validator.LoadConfig(); err != nil {
		return nil, err
	}

	outcome, err := validator.Validate(candidate)
	if err != nil {
		return nil, err
	}

	if !outcome.Valid {
		// Non-exceptional failure: the caller should try again with
		// different input, the system itself is fine.
		logger.Debug().Int("violations", len(outcome.Violations)).Msg("candidate rejected by validator")
		return &domain.CommitResult{
			Success:    false,
			Message:    candidate,
			Violations: outcome.Violations,
			Warnings:   outcome.Warnings,
			Error:      validate.FormatIssues(validator, outcome.Violations),
		}, nil
	}

	// Step 8: persist so external tooling can pick the message up even if
	// the commit itself is declined
	if err = o.repo.PersistPendingMessage(ctx, candidate); err != nil {
		return nil, fmt.Errorf("persisting validated message: %w", err)
	}

	result := &domain.CommitResult{
		Success:  true,
		Message:  candidate,
		Warnings: outcome.Warnings,
	}

	// Step 9: commit decision
	if autoCommit {
		sha, commitErr := o.repo.Commit(ctx, candidate)
		if commitErr != nil {
			return nil, fmt.Errorf("%w: %w", scribeerrors.ErrCommitFailed, commitErr)
		}
		result.AutoCommitted = true
		result.CommitSHA = sha
		logger.Info().Str("commit_sha", sha).Msg("commit created")
	} else {
		logger.Info().Msg("message validated and persisted, commit declined")
	}

	return result, nil
}

// structuredConditions are the sentinel errors preserved unchanged by the
// top-level fault handler.
var structuredConditions = []error{
	scribeerrors.ErrInvalidRequest,
	scribeerrors.ErrNotGitRepo,
	scribeerrors.ErrNothingToCommit,
	scribeerrors.ErrGenerationFailed,
	scribeerrors.ErrValidatorNotReady,
	scribeerrors.ErrValidatorNotFound,
	scribeerrors.ErrCommitFailed,
	scribeerrors.ErrGitOperation,
	context.Canceled,
	context.DeadlineExceeded,
}

// wrapFault maps unknown faults to the generic operation-failed condition
// while preserving already-structured conditions unchanged.
func (o *Orchestrator) wrapFault(err error) error {
	if err == nil {
		return nil
	}
	for _, condition := range structuredConditions {
		if stderrors.Is(err, condition) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", scribeerrors.ErrOperationFailed, err)
}
