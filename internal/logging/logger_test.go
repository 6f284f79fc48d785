package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	New("tui").Info("hola")

	output := buf.String()
	if !strings.Contains(output, "component=tui") {
		t.Fatalf("expected component=tui in output, got: %s", output)
	}
	if !strings.Contains(output, "hola") {
		t.Fatalf("expected message in output, got: %s", output)
	}
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)
	New("report").Info("json check")
	if !strings.Contains(buf.String(), `"level":"INFO"`) {
		t.Fatalf("expected JSON level field, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestOpenFileCreatesLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := OpenFile(dir)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	if _, err := os.Stat(filepath.Join(dir, "tablero.log")); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}
