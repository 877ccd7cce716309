package config

import (
	"fmt"
	"strings"

	"github.com/mrz1836/scribe/internal/domain"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// validLogLevels are the levels accepted by log.level.
var validLogLevels = map[string]struct{}{
	"trace": {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks a Config for internal consistency.
// It is called after every load and after applying overrides.
func Validate(cfg *Config) error {
	if cfg == nil {
		return scribeerrors.ErrConfigNil
	}

	if strings.TrimSpace(cfg.Generation.Command) == "" {
		return fmt.Errorf("%w: generation.command cannot be empty", scribeerrors.ErrConfigInvalid)
	}
	if cfg.Generation.Timeout <= 0 {
		return fmt.Errorf("%w: generation.timeout must be positive, got %s", scribeerrors.ErrConfigInvalid, cfg.Generation.Timeout)
	}
	if cfg.Generation.MaxTokens <= 0 {
		return fmt.Errorf("%w: generation.max_tokens must be positive, got %d", scribeerrors.ErrConfigInvalid, cfg.Generation.MaxTokens)
	}
	if cfg.Generation.Temperature < 0 || cfg.Generation.Temperature > 1 {
		return fmt.Errorf("%w: generation.temperature must be between 0 and 1, got %g", scribeerrors.ErrConfigInvalid, cfg.Generation.Temperature)
	}

	if cfg.Commit.DefaultStyle != "" && !domain.IsValidStyle(domain.Style(cfg.Commit.DefaultStyle)) {
		return fmt.Errorf("%w: commit.default_style %q is not a known style", scribeerrors.ErrConfigInvalid, cfg.Commit.DefaultStyle)
	}
	if strings.TrimSpace(cfg.Commit.Validator) == "" {
		return fmt.Errorf("%w: commit.validator cannot be empty", scribeerrors.ErrConfigInvalid)
	}

	if _, ok := validLogLevels[cfg.Log.Level]; !ok {
		return fmt.Errorf("%w: log.level %q is not a known level", scribeerrors.ErrConfigInvalid, cfg.Log.Level)
	}

	return nil
}
