package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConsoleWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "janitor.log")

	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("scan complete", String("root", "/photos"), Int("files", 12))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "scan complete") {
		t.Fatalf("unexpected log line: %q", line)
	}
	if !strings.Contains(line, "root=/photos") || !strings.Contains(line, "files=12") {
		t.Fatalf("missing attributes: %q", line)
	}
}

func TestNewComponentLoggerPrefixesMessages(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "janitor.log")

	base, err := New(Options{Level: "debug", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger := NewComponentLogger(base, "mover")
	logger.Warn("destination exists")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "mover: destination exists") {
		t.Fatalf("component prefix missing: %q", string(data))
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	cases := map[string]string{
		"":        "INFO",
		"debug":   "DEBUG",
		"warn":    "WARN",
		"error":   "ERROR",
		"unknown": "INFO",
	}
	for input, want := range cases {
		if got := levelLabel(parseLevel(input)); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", input, got, want)
		}
	}
}
