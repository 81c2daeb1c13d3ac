// Package log provides a small structured logging interface built on
// [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Info("search done", slog.Int("matches", 3))
//
// Loggers are values. [Logger.Wrap] and [Logger.With] return new loggers and
// never modify the receiver, so a Logger may be shared between goroutines.
//
// The package also keeps a default logger, writing to [os.Stderr], used by the
// package-level functions ([Debug], [InfoContext], ...). [Config] replaces it
// with a reconfigured copy.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn], and [LevelError].
// Messages below the configured level are discarded.
//
// # Formats
//
// [FormatText] (default) and [FormatJSON]. With [WithPretty] enabled, text
// output is colorized and unquoted for reading on a terminal.
//
// # Time Formatting
//
// [WithTimeLayout] accepts the names of the [time] package layouts
// ("RFC3339", "Kitchen", "StampMilli", ...) case-insensitively, a custom
// layout, or "none" (or the empty string) to omit timestamps.
package log
