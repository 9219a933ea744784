// Package log is the structured logging layer of spiral, built on
// [log/slog].
//
// A [Logger] is made once with functional options and then passed by value
// to the components that log:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithCaller(true))
//
//	lx := lexer.New(lexer.WithLogger(logger))
//
// The zero Logger is valid and discards every record, so components need no
// nil checks.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn] and [LevelError]. The lexer and parser log only at trace.
// [Level] and [Format] implement [encoding.TextUnmarshaler], so both can be
// bound directly to command-line flags.
//
// # Output
//
// Records are encoded as slog text or JSON. [WithPretty] switches to a
// colorized layout for terminals; colors are chosen per writer and are not
// emitted when the writer is not a terminal.
//
// # Package logger
//
// The top-level functions ([Info], [DebugContext], ...) write through a
// package logger that [Config] reconfigures and [SetDefault] replaces.
package log
