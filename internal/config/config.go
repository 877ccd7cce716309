// Package config manages scribe configuration.
//
// Configuration merges four layers, highest precedence first: environment
// variables (SCRIBE_* prefix), the project config (.scribe/config.yaml), the
// global config (~/.scribe/config.yaml), and built-in defaults.
package config

import (
	"time"

	"github.com/mrz1836/scribe/internal/domain"
	"github.com/mrz1836/scribe/internal/validate"
)

// Config is the root configuration for scribe.
type Config struct {
	// Generation configures the message generation backend.
	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`

	// Commit configures workflow defaults.
	Commit CommitConfig `yaml:"commit" mapstructure:"commit"`

	// Log configures logging output.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// GenerationConfig configures the generation requester.
type GenerationConfig struct {
	// Command is the AI CLI executable used by the default requester.
	Command string `yaml:"command" mapstructure:"command"`

	// Args are extra arguments placed before the generated flags.
	Args []string `yaml:"args" mapstructure:"args"`

	// Model optionally names the preferred model.
	Model string `yaml:"model" mapstructure:"model"`

	// Timeout bounds one generation exchange.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens limits the reply size.
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// Temperature biases determinism (0) versus creativity (1).
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// CommitConfig configures workflow defaults applied when a request leaves a
// field unset.
type CommitConfig struct {
	// DefaultStyle is the preset used when a request names none.
	DefaultStyle string `yaml:"default_style" mapstructure:"default_style"`

	// AutoCommit controls whether validated messages are committed.
	AutoCommit bool `yaml:"auto_commit" mapstructure:"auto_commit"`

	// AutoStage controls whether unstaged changes are staged automatically.
	AutoStage bool `yaml:"auto_stage" mapstructure:"auto_stage"`

	// Validator names the registered validator that judges candidates.
	Validator string `yaml:"validator" mapstructure:"validator"`
}

// LogConfig configures the logging sinks.
type LogConfig struct {
	// Level is the minimum level emitted (trace, debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// File is an optional rotating log file path. Empty disables the file
	// sink.
	File string `yaml:"file" mapstructure:"file"`

	// MaxSizeMB rotates the log file once it exceeds this size.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays removes rotated files older than this.
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
}

// DefaultConfig returns a new Config with the built-in defaults.
// These form the base layer overridden by config files and environment
// variables.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			// Command: "claude" is the expected AI CLI on PATH.
			Command: "claude",

			// Args: "-p" selects non-interactive print mode.
			Args: []string{"-p"},

			// Timeout: a minute covers a generation round trip with headroom.
			Timeout: 60 * time.Second,

			// MaxTokens: commit messages are short; 1024 is generous.
			MaxTokens: 1024,

			// Temperature: low, messages should be deterministic.
			Temperature: 0.2,
		},
		Commit: CommitConfig{
			DefaultStyle: string(domain.StyleDefault),
			AutoCommit:   true,
			AutoStage:    true,
			Validator:    validate.DefaultValidatorName,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}
