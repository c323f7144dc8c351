// Package logger builds the slog.Logger instances used across the plugin.
//
// The factory defaults to text output at info level, which reads well in a
// terminal next to a chat client; production embeddings can switch to JSON
// for log aggregation. Defaults may be overridden programmatically with
// options or from the environment via Config and the config package
// (LOG_LEVEL, LOG_FORMAT).
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithAttrs(slog.String("component", "dispatch")),
//	)
package logger
