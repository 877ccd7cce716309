package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/scribe/internal/config"
	"github.com/mrz1836/scribe/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// Set during PersistentPreRunE; access via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
// Must only be called after the root command's PersistentPreRunE has run;
// before that it returns a zero-value logger that discards output.
// Safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates the root command for the scribe CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "scribe",
		Short: "scribe - AI-assisted commit message orchestration",
		Long: `scribe turns a natural-language description of your change into a
validated, conventional-format commit.

It inspects repository state, stages changes when asked to, requests a
commit message from an AI backend, validates the candidate against the
selected preset, and optionally creates the commit.`,
		Version: formatVersion(info),
		// Show help when invoked without a subcommand; going through RunE
		// keeps PersistentPreRunE in the path for flag validation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			// Config must load before the logger so the log section can
			// shape it; a broken config file falls back to defaults.
			cfg, loadErr := config.Load(cmd.Context())
			if loadErr != nil {
				cfg = config.DefaultConfig()
			}

			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet, cfg.Log)
			logger := globalLogger
			globalLoggerMu.Unlock()

			if loadErr != nil {
				logger.Warn().Err(loadErr).Msg("failed to load config, using defaults")
			}

			return nil
		},
		// We print our own error messages
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddCommitCommand(cmd)
	AddApplyCommand(cmd)
	AddPresetCommand(cmd)
	AddValidatorCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
