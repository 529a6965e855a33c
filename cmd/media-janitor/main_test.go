package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCountCommandRendersTree(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "trips"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "trips", "a.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "count", root)
	if err != nil {
		t.Fatalf("count: %v\n%s", err, out)
	}
	if !strings.Contains(out, "trips/ (Photos: 1, Videos: 0, Other: 0)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 photos, 0 videos, 0 other") {
		t.Fatalf("totals missing:\n%s", out)
	}
}

func TestAssignDateCommandRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t, "assign-date", path, "July 2019")
	if err == nil || !strings.Contains(err.Error(), "invalid date format") {
		t.Fatalf("err = %v, want invalid date format", err)
	}
}

func TestAssignDateCommandSourceThenDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "assign-date", path, "2019-07-04")
	if err != nil {
		t.Fatalf("assign-date: %v\n%s", err, out)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2019, 7, 4, 12, 0, 0, 0, time.Local)
	if !info.ModTime().Equal(want) {
		t.Fatalf("mtime = %v, want %v", info.ModTime(), want)
	}
}

func TestHealthCheckThresholdsFlag(t *testing.T) {
	out, err := runCommand(t, "health-check", "--thresholds")
	if err != nil {
		t.Fatalf("health-check --thresholds: %v\n%s", err, out)
	}
	for _, want := range []string{"Photo eras:", "Video eras:", "Min resolution"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestHealthCheckNoInteractiveDeletesFlaggedFiles(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "empty.jpg")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "health-check", "--no-interactive", root)
	if err != nil {
		t.Fatalf("health-check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1 flagged, 1 deleted") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("flagged file should be deleted, err=%v", err)
	}
}

func TestHealthCheckRequiresRootWithoutThresholds(t *testing.T) {
	_, err := runCommand(t, "health-check")
	if err == nil {
		t.Fatal("expected error when no root is given")
	}
}

func TestOrganizeCommandDryRun(t *testing.T) {
	source := t.TempDir()
	dest := t.TempDir()
	folder := filepath.Join(source, "Summer")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(folder, "a.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "organize", "--dry-run", "--no-interactive",
		source, filepath.Join(dest, "photos"), filepath.Join(dest, "videos"))
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Dry run: no files were moved.") {
		t.Fatalf("missing dry run notice:\n%s", out)
	}
	if _, err := os.Stat(folder); err != nil {
		t.Fatalf("dry run must not move the folder: %v", err)
	}
}
