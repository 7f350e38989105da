package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/schemaprism/prism/internal/config"
	"github.com/schemaprism/prism/internal/logging"
)

// logger is the package-level component logger CLI commands share,
// following the teacher's internal/cli convention of a package-level
// zerolog.Logger reassigned by setupLogging on every invocation.
var logger zerolog.Logger //nolint:gochecknoglobals // required for zerolog context integration

// setupLogging configures logging from config file, environment, and the
// --debug flag, wires a trace ID and audit logger onto the command's
// context, and returns the chosen log destination so cleanupLogging can
// close it.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
		File:   cfg.Logging.File,
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.Output = "stderr"
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)

	auditEnabled, _ := cmd.Flags().GetBool("audit")
	auditLogger := logging.NewAuditLogger(logging.AuditLoggerConfig{
		Enabled: auditEnabled,
		File:    cfg.Logging.File,
	})
	ctx = logging.ContextWithAuditLogger(ctx, auditLogger)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes any open log file. The audit logger has no
// lifecycle of its own — it writes one line per entry and holds no
// handle beyond the file opened by NewAuditLogger, which is released
// with the process.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
