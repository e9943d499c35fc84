package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/retrial/internal/ui/output"
	"go.trai.ch/retrial/internal/ui/style"
)

// PrettyHandler is a slog.Handler that renders one colored line per record:
// a level marker, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler

	// fields holds attributes from WithAttrs, already qualified and rendered.
	fields []string
	// prefix is the dotted group path applied to attributes added from now on.
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
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

// Handle renders the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker, color := levelStyle(r.Level)

	var b strings.Builder
	if marker != "" {
		b.WriteString(marker)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	fields := slices.Clone(h.fields)
	r.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, attr)
		return true
	})
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f)
	}

	line := h.out.String(b.String()).Foreground(color).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs under the current group on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.fields = slices.Clip(h.fields)
	for _, attr := range attrs {
		next.fields = appendAttr(next.fields, h.prefix, attr)
	}
	return &next
}

// WithGroup returns a handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case level >= LevelSuccess:
		return style.Check, termenv.RGBColor(string(style.Green))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// appendAttr renders attr as prefix+key=value, flattening group values.
func appendAttr(fields []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			fields = appendAttr(fields, prefix, member)
		}
		return fields
	}

	return append(fields, prefix+attr.Key+"="+quoteValue(attr.Value.String()))
}

func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
