package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// field is a resolved, flattened attribute.
type field struct {
	key   string
	value slog.Value
}

// prettyHandler writes colorized records either as a single line of
// key=value pairs or as an indented JSON object. Group attributes are
// flattened into dotted keys.
type prettyHandler struct {
	opts   slog.HandlerOptions
	format Format
	mu     *sync.Mutex
	w      io.Writer
	prefix string
	fields []field
}

func newPrettyHandler(w io.Writer, format Format, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, format: format, mu: &sync.Mutex{}, w: w}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.fields = h.flatten(clip(h.fields), h.prefix, attrs)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.fields)+r.NumAttrs())

	for _, a := range h.builtins(r) {
		if a.Key == slog.TimeKey {
			a = h.replace(nil, a)
		}

		if a.Key != "" {
			fields = append(fields, field{a.Key, a.Value})
		}
	}

	fields = append(fields, h.fields...)

	var attrs []slog.Attr

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	fields = h.flatten(fields, h.prefix, attrs)

	var buf bytes.Buffer

	if h.format == FormatJSON {
		writeJSON(&buf, fields)
	} else {
		writeText(&buf, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) builtins(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		attrs = append(attrs, slog.Time(slog.TimeKey, r.Time))
	}

	attrs = append(attrs, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			attrs = append(attrs,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	return append(attrs, slog.String(slog.MessageKey, r.Message))
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

func (h *prettyHandler) flatten(dst []field, prefix string, attrs []slog.Attr) []field {
	for _, a := range attrs {
		a.Value = a.Value.Resolve()

		if a.Value.Kind() == slog.KindGroup {
			sub := a.Value.Group()
			if a.Key == "" {
				dst = h.flatten(dst, prefix, sub)
			} else {
				dst = h.flatten(dst, prefix+a.Key+".", sub)
			}

			continue
		}

		if a.Equal(slog.Attr{}) {
			continue
		}

		dst = append(dst, field{prefix + a.Key, a.Value})
	}

	return dst
}

func clip(f []field) []field { return f[:len(f):len(f)] }

func writeText(buf *bytes.Buffer, fields []field) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(colorGray)
		buf.WriteString(f.key)
		buf.WriteString(colorReset)
		buf.WriteByte('=')
		writeValue(buf, f.value, false)
	}

	buf.WriteByte('\n')
}

func writeJSON(buf *bytes.Buffer, fields []field) {
	buf.WriteString("{\n")

	for i, f := range fields {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(colorGray)
		buf.WriteString(strconv.Quote(f.key))
		buf.WriteString(colorReset)
		buf.WriteString(": ")
		writeValue(buf, f.value, true)
	}

	buf.WriteString("\n}\n")
}

func writeValue(buf *bytes.Buffer, v slog.Value, quote bool) {
	color, text := colorCyan, ""

	switch v.Kind() {
	case slog.KindString:
		text = v.String()

	case slog.KindInt64:
		color, text, quote = colorYellow, strconv.FormatInt(v.Int64(), 10), false

	case slog.KindUint64:
		color, text, quote = colorYellow, strconv.FormatUint(v.Uint64(), 10), false

	case slog.KindFloat64:
		color, text, quote = colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64), false

	case slog.KindBool:
		color, text, quote = colorRed, "false", false
		if v.Bool() {
			color, text = colorGreen, "true"
		}

	case slog.KindDuration:
		color, text = colorMagenta, v.Duration().String()

	case slog.KindTime:
		color, text = colorBlue, v.Time().Format(time.RFC3339)

	default:
		switch a := v.Any().(type) {
		case slog.Level:
			color, text = levelColor(a), levelName(a)

		case error:
			color, text = colorRed, a.Error()

		default:
			text = v.String()

			if quote {
				if b, err := json.Marshal(a); err == nil {
					text, quote = string(b), false
				}
			}
		}
	}

	if quote {
		text = strconv.Quote(text)
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(colorReset)
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return colorRed
	case l >= slog.LevelWarn:
		return colorYellow
	case l >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}
