package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/ogimage/pkg/mocks"
	"github.com/user/ogimage/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, ports.LevelWarn)

	l.Debug("debug %s", "hidden")
	l.Info("info %s", "hidden")
	l.Warn("warn %s", "shown")
	l.Error("error %s", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level were written: %q", out)
	}
	if strings.Count(out, "shown") != 2 {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestConsoleLogger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	l := &ConsoleLogger{level: ports.LevelDebug, out: &out, errOut: &errOut}

	l.Info("card %s", "brooch.png")
	l.Warn("photo %s", "missing.png")

	if !strings.Contains(out.String(), "brooch.png") || strings.Contains(out.String(), "missing.png") {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "missing.png") {
		t.Errorf("expected warning on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriter(&buf, ports.LevelDebug)
	l := base.WithComponent("composer")

	l.Debug("drawing %d dots", 20)
	base.Debug("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "[composer] ") || !strings.Contains(lines[0], "20") {
		t.Errorf("unexpected component line %q", lines[0])
	}
	if strings.Contains(lines[1], "[") {
		t.Errorf("component leaked to the parent logger: %q", lines[1])
	}
}

func TestFileLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newFileLogger(&buf, ports.LevelInfo)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.WithComponent("photofetch").Warn("Photo unavailable, drawing placeholder: %s", "timeout")
	l.Debug("skipped")

	want := "2026-01-02T03:04:05Z WARN [photofetch] Photo unavailable, drawing placeholder: timeout\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFileLogger_Dropped(t *testing.T) {
	l := newFileLogger(failingWriter{}, ports.LevelInfo)

	l.Info("Card saved to %s", "card.png")
	l.WithComponent("composer").Warn("Photo unavailable, drawing placeholder: %s", "404")
	l.Debug("below level, not attempted")

	if n := l.Dropped(); n != 2 {
		t.Errorf("expected 2 dropped lines, got %d", n)
	}
}

func TestNewFile(t *testing.T) {
	path := t.TempDir() + "/ogimage.log"
	l, closer := NewFile(path, ports.LevelDebug, FileOptions{MaxSizeMB: 1})
	l.Info("Card saved to %s", "card.png")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestMultiLogger(t *testing.T) {
	a, b := mocks.NewLogger(), mocks.NewLogger()
	l := NewMulti(a, b).WithComponent("cli")

	l.Info("hello %s", "world")
	l.Error("boom")

	for i, m := range []*mocks.Logger{a, b} {
		entries := m.Entries(ports.LevelDebug)
		if len(entries) != 2 {
			t.Fatalf("logger %d: expected 2 entries, got %d", i, len(entries))
		}
		if entries[0].Message != "hello world" || entries[0].Component != "cli" {
			t.Errorf("logger %d: unexpected entry %+v", i, entries[0])
		}
	}

	if single := NewMulti(a); single != ports.Logger(a) {
		t.Error("expected a single logger to be returned unchanged")
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoop()
	l.Error("ignored")
	if l.WithComponent("x") != ports.Logger(l) {
		t.Error("expected WithComponent to return the same logger")
	}
}
