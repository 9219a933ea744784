package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of pretty output. Styles come from a renderer
// bound to the output writer, so color is dropped when the writer is not a
// terminal.
type palette struct {
	key    lipgloss.Style
	str    lipgloss.Style
	number lipgloss.Style
	yes    lipgloss.Style
	no     lipgloss.Style
	null   lipgloss.Style
	time   lipgloss.Style
	trace  lipgloss.Style
	debug  lipgloss.Style
	info   lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style { return r.NewStyle().Foreground(lipgloss.Color(c)) }

	return palette{
		key:    fg("8"),
		str:    fg("6"),
		number: fg("3"),
		yes:    fg("2"),
		no:     fg("1"),
		null:   fg("8"),
		time:   fg("4"),
		trace:  fg("5"),
		debug:  fg("4"),
		info:   fg("2"),
		warn:   fg("3").Bold(true),
		err:    fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler writes colorized records either as a single key=value line
// or as an indented, unquoted JSON-like block.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	attrs  []slog.Attr
	groups []string
	block  bool
}

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w, pal: newPalette(w)}
}

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	h := newPrettyTextHandler(w, opts)
	h.block = true

	return h
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], h.qualify(attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

// qualify prefixes attribute keys with the open groups.
func (h *prettyHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if len(h.groups) == 0 {
		return attrs
	}

	prefix := strings.Join(h.groups, ".") + "."
	out := make([]slog.Attr, len(attrs))

	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}

	return out
}

// builtin applies ReplaceAttr to one of the record's own attributes.
func (h *prettyHandler) builtin(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	type field struct {
		key   string
		value string
	}

	var fields []field

	add := func(key, value string) { fields = append(fields, field{key, value}) }

	if !r.Time.IsZero() {
		if a := h.builtin(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			add(a.Key, h.pal.time.Render(a.Value.Resolve().String()))
		}
	}

	level := h.builtin(slog.Any(slog.LevelKey, r.Level))
	add(slog.LevelKey, h.pal.level(r.Level).Render(level.Value.Resolve().String()))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			add(slog.SourceKey, h.pal.str.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	add(slog.MessageKey, h.pal.str.Render(r.Message))

	attrs := h.attrs

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify([]slog.Attr{a})...)

		return true
	})

	for _, a := range attrs {
		flatten("", a, func(key string, v slog.Value) {
			add(key, h.value(v))
		})
	}

	var buf bytes.Buffer

	if h.block {
		buf.WriteString("{\n")

		for i, f := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			buf.WriteString(h.pal.key.Render(f.key))
			buf.WriteString(": ")
			buf.WriteString(f.value)
		}

		buf.WriteString("\n}\n")
	} else {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(h.pal.key.Render(f.key))
			buf.WriteByte('=')
			buf.WriteString(f.value)
		}

		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// flatten expands group values into dotted keys.
func flatten(prefix string, a slog.Attr, emit func(string, slog.Value)) {
	v := a.Value.Resolve()

	key := a.Key
	if prefix != "" {
		key = prefix + "." + a.Key
	}

	if v.Kind() != slog.KindGroup {
		if a.Key != "" || prefix != "" {
			emit(key, v)
		}

		return
	}

	if a.Key == "" {
		key = prefix
	}

	for _, sub := range v.Group() {
		flatten(key, sub, emit)
	}
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.pal.str.Render(v.String())
	case slog.KindInt64:
		return h.pal.number.Render(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		return h.pal.number.Render(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		return h.pal.number.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return h.pal.yes.Render("true")
		}

		return h.pal.no.Render("false")
	case slog.KindDuration:
		return h.pal.number.Render(v.Duration().String())
	case slog.KindTime:
		return h.pal.time.Render(v.Time().Format(timeLayouts["rfc3339nano"]))
	default:
		if v.Any() == nil {
			return h.pal.null.Render("null")
		}

		return h.pal.str.Render(v.String())
	}
}
