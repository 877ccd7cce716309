package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/scribe/internal/errors"
)

// newViperInstance creates a Viper instance with the standard scribe setup:
// built-in defaults, SCRIBE_ environment prefix, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the YAML tag names exactly.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("generation.command", defaults.Generation.Command)
	v.SetDefault("generation.args", defaults.Generation.Args)
	v.SetDefault("generation.model", defaults.Generation.Model)
	v.SetDefault("generation.timeout", defaults.Generation.Timeout.String())
	v.SetDefault("generation.max_tokens", defaults.Generation.MaxTokens)
	v.SetDefault("generation.temperature", defaults.Generation.Temperature)

	v.SetDefault("commit.default_style", defaults.Commit.DefaultStyle)
	v.SetDefault("commit.auto_commit", defaults.Commit.AutoCommit)
	v.SetDefault("commit.auto_stage", defaults.Commit.AutoStage)
	v.SetDefault("commit.validator", defaults.Commit.Validator)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// viperDecoderOption configures mapstructure to convert duration strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// unmarshalAndValidate unmarshals the viper state into a Config and validates
// it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources.
// Precedence, highest first: environment variables (SCRIBE_* prefix), project
// config (.scribe/config.yaml), global config (~/.scribe/config.yaml),
// built-in defaults.
//
// Missing config files are expected and skipped silently; only actual
// configuration problems produce an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first, lower precedence
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	// Project config merges over global
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("generation.command", cfg.Generation.Command).
		Dur("generation.timeout", cfg.Generation.Timeout).
		Str("commit.default_style", cfg.Commit.DefaultStyle).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths, mainly for
// tests. Either path can be empty to skip that layer.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// loadGlobalConfig loads the global config file if it exists.
func loadGlobalConfig(v *viper.Viper) error {
	globalDir, err := GlobalConfigDir()
	if err != nil {
		// Home dir unavailable, skip silently
		return nil //nolint:nilerr // missing global config is not an error
	}

	globalConfigPath := filepath.Join(globalDir, configFileName)
	if !fileExists(globalConfigPath) {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig loads the project config file if it exists.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}
