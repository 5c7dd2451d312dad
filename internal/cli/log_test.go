package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/proofgen/pkg/observability"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info passes info", log.InfoLevel, func(l *log.Logger) { l.Info("bundle written") }, true},
		{"info drops debug", log.InfoLevel, func(l *log.Logger) { l.Debug("cache miss") }, false},
		{"debug passes debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache miss") }, true},
		{"info passes warn", log.InfoLevel, func(l *log.Logger) { l.Warn("sessions unavailable") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Generated bundle", "name", "leads-go-cold")

	out := buf.String()
	for _, want := range []string{"Generated bundle", "name", "leads-go-cold", "took"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext should fall back to a default logger")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), l))
	if got != l {
		t.Fatal("loggerFromContext did not return the stored logger")
	}
	got.Info("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Error("stored logger did not write to its writer")
	}
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug not logged after SetLogLevel(LogDebug)")
	}
}
