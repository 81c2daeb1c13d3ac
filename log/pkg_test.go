package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func useDefault(t *testing.T, l Logger) {
	t.Helper()

	defaultMu.Lock()
	original := defaultLog
	defaultLog = l
	defaultMu.Unlock()

	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	})
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, Make(&buf, WithLevel(LevelDebug), WithFormat(FormatJSON)))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			out := buf.String()
			if !strings.Contains(out, `"level":"`+tt.level+`"`) {
				t.Errorf("expected level %s, got: %s", tt.level, out)
			}

			if !strings.Contains(out, `"key":"value"`) {
				t.Errorf("expected attribute, got: %s", out)
			}
		})
	}
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, Make(&buf, WithLevel(LevelTrace)))

	ctx := context.Background()
	TraceContext(ctx, "t")
	DebugContext(ctx, "d")
	InfoContext(ctx, "i")
	WarnContext(ctx, "w")
	ErrorContext(ctx, "e")

	if got := strings.Count(buf.String(), "\n"); got != 5 {
		t.Errorf("expected 5 lines, got %d: %s", got, buf.String())
	}
}

func TestPackage_Config_ReconfiguresDefault(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, Make(&buf, WithLevel(LevelError)))

	Info("hidden")
	Config(WithLevel(LevelInfo))
	Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output after Config: %s", out)
	}

	With(slog.Bool("x", true)).Info("attrs")

	if !strings.Contains(buf.String(), "x=true") {
		t.Errorf("expected attribute from With, got: %s", buf.String())
	}
}
