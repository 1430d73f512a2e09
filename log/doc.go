// Package log is a small structured logging layer over [log/slog].
//
// A [Logger] is immutable: [Logger.Wrap] and [Logger.With] return modified
// copies, so a Logger can be shared across goroutines and stored in values
// without synchronization. The zero Logger discards everything.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//	logger.Debug("parsed rule", slog.Int("nodes", 3))
//
// Levels extend slog's four with [LevelTrace], which is rendered as "TRACE"
// rather than "DEBUG-4".
//
// Formats are [FormatText] and [FormatJSON]. With [WithPretty], either is
// colorized for terminals, attributes from [Logger.With] and
// [slog.Logger.WithGroup] are flattened into dotted keys, and
// [slog.LogValuer] values are resolved before printing.
//
// The package-level functions ([Info], [Debug], ...) write through a
// default Logger that starts on os.Stderr and is reconfigured with
// [Config] or replaced with [SetDefault].
package log
