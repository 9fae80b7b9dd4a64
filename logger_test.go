package landscape

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
)

// captureLog installs a debug-level text logger for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if silent.Enabled(context.Background(), level) {
			t.Errorf("silent logger enabled at %v", level)
		}
	}
}

func TestRenderLogsDisabledMoon(t *testing.T) {
	buf := captureLog(t)
	broken := fstest.MapFS{"moon.png": {Data: []byte("garbage")}}
	if _, err := New(testAtlas(t), WithSeed(1), WithMoonOverlay(broken, "moon.png")).Render(testInput()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"moon overlay disabled", "path=moon.png", "glyph loaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilSilences(t *testing.T) {
	buf := captureLog(t)
	SetLogger(nil)
	if _, err := New(testAtlas(t), WithSeed(1)).Render(testInput()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("logged after SetLogger(nil):\n%s", buf.String())
	}
}
