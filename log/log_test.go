package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_LevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithPretty(false),
	)

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", logger.Debug, "DEBUG", "debug message"},
		{"Info", logger.Info, "INFO", "info message"},
		{"Warn", logger.Warn, "WARN", "warn message"},
		{"Error", logger.Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected output to contain message %q, got: %s", tt.msg, output)
			}

			if !strings.Contains(output, tt.level) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}

			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelWarn),
		WithFormat(FormatText),
		WithPretty(false),
	)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("expected filtered messages to be absent, got: %s", output)
	}

	if !strings.Contains(output, "visible warn") {
		t.Errorf("expected warn message to be present, got: %s", output)
	}
}

func TestLogger_ZeroValueIsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("dropped")
	logger.Error("dropped")
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(false))

	wrapped := logger.Wrap(WithLevel(LevelError))
	if wrapped.Level() != LevelError {
		t.Errorf("expected wrapped level %v, got %v", LevelError, wrapped.Level())
	}

	if logger.Level() != DefaultLevel {
		t.Errorf("Wrap mutated the receiver: level %v", logger.Level())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false)).
		With(slog.String("component", "calc"))

	logger.Info("message")

	if !strings.Contains(buf.String(), `"component":"calc"`) {
		t.Errorf("expected attached attribute in output, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"text", FormatText},
		{" TEXT ", FormatText},
		{"bogus", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPackage_DefaultLogger(t *testing.T) {
	original := Default()

	defer func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	}()

	var buf bytes.Buffer

	Config(
		WithOutput(&buf),
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithPretty(false),
	)

	Info("package-level message", slog.Int("answer", 42))

	output := buf.String()
	if !strings.Contains(output, "package-level message") {
		t.Errorf("expected message in default logger output, got: %s", output)
	}

	if !strings.Contains(output, `"answer":42`) {
		t.Errorf("expected attribute in default logger output, got: %s", output)
	}
}

func TestPrettyTextHandler_Colors(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	)

	logger.Info("colorful", slog.String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "\033[") {
		t.Errorf("expected ANSI escapes in pretty output, got: %q", output)
	}

	if !strings.Contains(output, "colorful") {
		t.Errorf("expected message in pretty output, got: %q", output)
	}
}

func TestPrettyJSONHandler_Fields(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(true),
		WithTimeLayout("none"),
	)

	logger.Warn("structured", slog.Bool("flag", true))

	output := buf.String()

	for _, want := range []string{`"msg"`, `"structured"`, `"flag"`, "true"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in pretty JSON output, got: %q", want, output)
		}
	}
}
