package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "padded upper", input: "  DEBUG ", want: slog.LevelDebug},
		{name: "warn alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "invalid", input: "nope", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Fatalf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetLevelAppliesToExistingLoggers(t *testing.T) {
	log := New("test")
	prev := Level()
	t.Cleanup(func() { SetLevel(prev) })

	SetLevel(slog.LevelError)
	if log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info to be disabled at error level")
	}
	SetLevel(slog.LevelDebug)
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug to be enabled after SetLevel(debug)")
	}
}

func TestSetOutputRedirectsExistingLoggers(t *testing.T) {
	log := New("redirect")
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	log.Error("boom", "path", "/tmp/x")
	out := buf.String()
	if !strings.Contains(out, "msg=boom") || !strings.Contains(out, "component=redirect") {
		t.Fatalf("unexpected log output %q", out)
	}
}
