package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrz1836/scribe/internal/config"
	"github.com/mrz1836/scribe/internal/git"
	"github.com/mrz1836/scribe/internal/orchestrator"
	"github.com/mrz1836/scribe/internal/preset"
	"github.com/mrz1836/scribe/internal/sampling"
	"github.com/mrz1836/scribe/internal/validate"
)

// loadConfig loads configuration, falling back to defaults on failure so a
// broken config file degrades the run instead of blocking it.
func loadConfig(ctx context.Context, logger zerolog.Logger) *config.Config {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// buildOrchestrator assembles the orchestrator and its collaborators from
// configuration.
func buildOrchestrator(workDir string, cfg *config.Config, logger zerolog.Logger) (*orchestrator.Orchestrator, error) {
	repo, err := git.NewRunner(workDir)
	if err != nil {
		return nil, err
	}

	registry := validate.NewRegistry(validate.WithRegistryLogger(logger))
	if err = registry.Register(validate.NewConventional(nil)); err != nil {
		return nil, err
	}

	requester, err := sampling.NewCLIRequester(cfg.Generation.Command,
		sampling.WithArgs(cfg.Generation.Args),
		sampling.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	opts := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithValidatorName(cfg.Commit.Validator),
		orchestrator.WithGenerationTimeout(cfg.Generation.Timeout),
		orchestrator.WithGenerationParams(cfg.Generation.MaxTokens, cfg.Generation.Temperature),
	}
	if cfg.Generation.Model != "" {
		opts = append(opts, orchestrator.WithModelHints([]string{cfg.Generation.Model}))
	}

	return orchestrator.New(repo, preset.NewCatalog(), registry, requester, opts...)
}
