package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if len(cfg.Health.PhotoEras) != 6 || len(cfg.Health.VideoEras) != 6 {
		t.Fatalf("expected built-in era tables, got %d/%d entries",
			len(cfg.Health.PhotoEras), len(cfg.Health.VideoEras))
	}
	if cfg.Viewer.Command == "" {
		t.Fatal("expected a default viewer command")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
format = "json"
level = "debug"

[viewer]
command = "feh"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg.Logging)
	}
	if cfg.Viewer.Command != "feh" {
		t.Fatalf("viewer override not applied: %q", cfg.Viewer.Command)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unsupported format")
	}
}

func TestEraTablesSortedWithOpenEndedLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[[health.photo_eras]]
max_year = 0
label = "Modern"
min_bytes = 100

[[health.photo_eras]]
max_year = 2000
label = "Old"
min_bytes = 10

[[health.video_eras]]
max_year = 0
label = "All"
min_bytes = 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	eras := cfg.Health.PhotoEras
	if len(eras) != 2 || eras[0].MaxYear != 2000 || eras[1].MaxYear != 0 {
		t.Fatalf("eras not sorted: %+v", eras)
	}
}

func TestValidateRequiresSingleOpenEndedEra(t *testing.T) {
	cfg := Default()
	cfg.Health.PhotoEras = []Era{{MaxYear: 2000, Label: "Old", MinBytes: 1}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when no open-ended era exists")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error when target exists")
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
