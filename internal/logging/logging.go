// Package logging provides a colored log/slog handler for diagnostic output.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LevelTrace is more verbose than slog.LevelDebug.
const LevelTrace = slog.Level(-8)

// ErrInvalidLevel is returned for level names that are not recognized.
var ErrInvalidLevel = errors.New("invalid log level")

// Levels lists the accepted level names, most verbose first.
//
//nolint:gochecknoglobals
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

// New returns a logger writing to out at the named level.
func New(out io.Writer, level string, noColor bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(NewHandler(out, lvl, noColor)), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Handler renders records as a single line: time, level, message, then key=value pairs.
type Handler struct {
	out     io.Writer
	mu      *sync.Mutex
	level   slog.Leveler
	noColor bool
	prefix  string
	attrs   []string
}

// NewHandler creates a Handler writing to out.
func NewHandler(out io.Writer, level slog.Leveler, noColor bool) *Handler {
	return &Handler{
		out:     out,
		mu:      &sync.Mutex{},
		level:   level,
		noColor: noColor,
	}
}

// Enabled reports whether records at level are written.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes a single record.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var line strings.Builder

	if !record.Time.IsZero() {
		line.WriteString(record.Time.Format("15:04:05.000"))
		line.WriteByte(' ')
	}

	line.WriteString(h.levelString(record.Level))
	line.WriteByte(' ')
	line.WriteString(h.paint(color.FgCyan, record.Message))

	for _, attr := range h.attrs {
		line.WriteByte(' ')
		line.WriteString(attr)
	}

	record.Attrs(func(attr slog.Attr) bool {
		if formatted := h.format(h.prefix, attr); formatted != "" {
			line.WriteByte(' ')
			line.WriteString(formatted)
		}

		return true
	})

	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, line.String())

	return err
}

// WithAttrs returns a handler that always writes attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)

	for _, attr := range attrs {
		if formatted := h.format(h.prefix, attr); formatted != "" {
			clone.attrs = append(clone.attrs, formatted)
		}
	}

	return &clone
}

// WithGroup returns a handler that qualifies subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func (h *Handler) format(prefix string, attr slog.Attr) string {
	attr.Value = attr.Value.Resolve()

	if attr.Equal(slog.Attr{}) {
		return ""
	}

	if attr.Value.Kind() == slog.KindGroup {
		var parts []string

		for _, member := range attr.Value.Group() {
			if formatted := h.format(prefix+attr.Key+".", member); formatted != "" {
				parts = append(parts, formatted)
			}
		}

		return strings.Join(parts, " ")
	}

	return h.paint(color.FgWhite, fmt.Sprintf("%s%s=%v", prefix, attr.Key, attr.Value.Any()))
}

func (h *Handler) levelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return h.paint(color.FgGreen, "TRACE")
	case level < slog.LevelInfo:
		return h.paint(color.FgMagenta, "DEBUG")
	case level < slog.LevelWarn:
		return h.paint(color.FgBlue, "INFO")
	case level < slog.LevelError:
		return h.paint(color.FgYellow, "WARN")
	default:
		return h.paint(color.FgRed, "ERROR")
	}
}

func (h *Handler) paint(attr color.Attribute, text string) string {
	if h.noColor {
		return text
	}

	return color.New(attr).Sprint(text)
}
