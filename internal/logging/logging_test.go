package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/idelchi/feistel/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, name := range logging.Levels {
		if _, err := logging.ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) error: %v", name, err)
		}
	}

	if lvl, _ := logging.ParseLevel("TRACE"); lvl != logging.LevelTrace {
		t.Errorf("ParseLevel(TRACE) = %v, want %v", lvl, logging.LevelTrace)
	}

	if _, err := logging.ParseLevel("loud"); !errors.Is(err, logging.ErrInvalidLevel) {
		t.Errorf("ParseLevel(loud) error = %v, want %v", err, logging.ErrInvalidLevel)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := logging.New(&buf, "info", true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	logger.Debug("hidden")
	logger.With("file", "a.txt").WithGroup("engine").Info("sealed", "rounds", 16)

	out := buf.String()

	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}

	for _, want := range []string{"INFO", "sealed", "file=a.txt", "engine.rounds=16"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("output %q is not a single line", out)
	}
}

func TestHandlerTrace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(logging.NewHandler(&buf, logging.LevelTrace, true))
	logger.Log(t.Context(), logging.LevelTrace, "round", "index", 3)

	if out := buf.String(); !strings.Contains(out, "TRACE round index=3") {
		t.Errorf("output = %q, want TRACE line", out)
	}
}
