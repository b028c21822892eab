package bootstrap

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/duopane/internal/infrastructure/config"
	"github.com/bnema/duopane/internal/logging"
)

const logFileName = "duopane.log"

// NewLogger builds the process logger. Environment variables override the
// configured level and format. When file logging is enabled a JSON copy of
// every line goes to a rotating file; the returned closer releases it.
func NewLogger(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, func() error, error) {
	level, format := logging.ApplyEnv(cfg.Level, cfg.Format)

	logCfg := logging.DefaultConfig()
	logCfg.Output = out
	if lvl, err := logging.ParseLevel(level); err == nil {
		logCfg.Level = lvl
	}
	if format == "json" || format == "console" {
		logCfg.Format = format
	}

	closer := func() error { return nil }
	if cfg.EnableFileLog && cfg.LogDir != "" {
		sink, err := logging.NewFileSink(cfg.LogDir, logFileName, cfg.MaxSizeMB, cfg.MaxBackups)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		logCfg.File = sink
		closer = sink.Close
	}

	return logging.New(logCfg), closer, nil
}

// FollowConfigLevel lets config reloads change verbosity without rebuilding
// the logger: the logger itself accepts everything and the global level
// filters.
func FollowConfigLevel(logger zerolog.Logger) zerolog.Logger {
	zerolog.SetGlobalLevel(logger.GetLevel())
	return logger.Level(zerolog.TraceLevel)
}

// ApplyConfigLevel switches the global level to the one in cfg.
func ApplyConfigLevel(log *zerolog.Logger, cfg *config.Config) {
	level, _ := logging.ApplyEnv(cfg.Logging.Level, "")
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid log level from reloaded config")
		return
	}
	if lvl == zerolog.GlobalLevel() {
		return
	}
	zerolog.SetGlobalLevel(lvl)
	log.Info().Str("level", lvl.String()).Msg("log level changed")
}
