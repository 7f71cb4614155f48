package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/obtools/internal/ui/output"
	"go.trai.ch/obtools/internal/ui/style"
)

// Attribute keys with a dedicated place in a pretty line.
const (
	// PathAttr names the file a line is about. It is printed before the message.
	PathAttr = "path"
	// KeyAttr names the configuration|platform pair a line is about. It is
	// printed as a tag after the level marker.
	KeyAttr = "key"
)

// field is an attribute flattened to its qualified key.
type field struct {
	key   string
	value string
}

// PrettyHandler is a slog.Handler producing one short, colored line per
// record:
//
//	! [Staging|x64] configuration is not defined project=App
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	fields []field
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, len(h.fields)+r.NumAttrs())
	fields = append(fields, h.fields...)
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendField(fields, h.prefix, attr)
		return true
	})

	var b strings.Builder
	color := termenv.RGBColor(string(style.Slate))
	switch {
	case r.Level >= slog.LevelError:
		b.WriteString(style.Cross + " ")
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		b.WriteString(style.Warning + " ")
		color = termenv.RGBColor(string(style.Yellow))
	}

	var path string
	rest := fields[:0:0]
	for _, f := range fields {
		switch f.key {
		case KeyAttr:
			b.WriteString("[" + f.value + "] ")
		case PathAttr:
			path = f.value
		default:
			rest = append(rest, f)
		}
	}
	if path != "" {
		b.WriteString(path + ": ")
	}
	b.WriteString(r.Message)
	for _, f := range rest {
		b.WriteString(" " + f.key + "=" + quote(f.value))
	}

	styled := h.out.String(b.String()).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make([]field, len(h.fields), len(h.fields)+len(attrs))
	copy(fields, h.fields)
	for _, attr := range attrs {
		fields = appendField(fields, h.prefix, attr)
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		fields: fields,
		prefix: h.prefix,
	}
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		fields: h.fields,
		prefix: h.prefix + name + ".",
	}
}

// appendField flattens attr under prefix. Empty attributes are dropped and
// group values expand into dotted keys.
func appendField(fields []field, prefix string, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			fields = appendField(fields, prefix, a)
		}
		return fields
	}
	return append(fields, field{key: prefix + attr.Key, value: attr.Value.String()})
}

// quote wraps values a reader could not tell apart from the next field.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
