package log

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
)

// Level is the severity of a log record.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is the level of a [Logger] made without [WithLevel].
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels returns the names of all levels, most verbose first.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range levels {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// String returns the lowercase level name. Levels between the named ones
// are written as an offset from the next lower name, e.g. "info+2".
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}

	if l < LevelTrace {
		return fmt.Sprintf("trace%d", l-LevelTrace)
	}

	base := LevelTrace
	for _, named := range levels {
		if named <= l {
			base = named
		}
	}

	return fmt.Sprintf("%s+%d", base, l-base)
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the names
// returned by [Level.String] in any case.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := parseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level

	return nil
}

// ParseLevel returns the level named by s, or [DefaultLevel] when s names
// no level.
func ParseLevel(s string) Level {
	level, err := parseLevel(s)
	if err != nil {
		return DefaultLevel
	}

	return level
}

func parseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)

	// slog has no name for trace.
	if name, offset, ok := cutLevel(s, "trace"); ok {
		var n int

		if offset != "" {
			if _, err := fmt.Sscanf(offset, "%d", &n); err != nil {
				return DefaultLevel, fmt.Errorf("invalid log level %q", name+offset)
			}
		}

		return LevelTrace + Level(n), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q", s)
	}

	return Level(level), nil
}

func cutLevel(s, name string) (string, string, bool) {
	if len(s) < len(name) || !strings.EqualFold(s[:len(name)], name) {
		return "", "", false
	}

	return s[:len(name)], s[len(name):], true
}

// Format selects the record encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the format of a [Logger] made without [WithFormat].
const DefaultFormat = FormatText

// Formats returns the names of all formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{FormatText, FormatJSON} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "text":
		*f = FormatText
	case "json":
		*f = FormatJSON
	default:
		return fmt.Errorf("invalid log format %q", text)
	}

	return nil
}

// ParseFormat returns the format named by s, or [DefaultFormat] when s
// names no format.
func ParseFormat(s string) Format {
	var f Format
	if err := f.UnmarshalText([]byte(s)); err != nil {
		return DefaultFormat
	}

	return f
}
