package paper

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLoggerReceivesPaperLogs(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	g := NewGraph()
	p := NewPaper(g, testOptions())
	g.AddCell(newRect("a", 0, 0, 10, 10))
	g.Sort()
	p.PointerDown(&PointerEvent{Target: p.FindViewByModel("a").Node()})
	g.RemoveCell("a")

	out := buf.String()
	for _, want := range []string{"view added", "views sorted", "pointer active", "view removed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
