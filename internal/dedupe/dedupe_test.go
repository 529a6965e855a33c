package dedupe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mediajanitor/internal/logging"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunKeepsShortestPath(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.jpg"), "same bytes")
	write(t, filepath.Join(root, "deep", "nested", "copy.jpg"), "same bytes")
	write(t, filepath.Join(root, "unique.jpg"), "different")

	summary, err := Run(context.Background(), Options{Root: root}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Scanned != 3 {
		t.Fatalf("Scanned = %d, want 3", summary.Scanned)
	}
	if len(summary.Groups) != 1 || summary.Removed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Groups[0].Kept != filepath.Join(root, "a.jpg") {
		t.Fatalf("kept %s, want shortest path", summary.Groups[0].Kept)
	}
	if _, err := os.Stat(filepath.Join(root, "deep", "nested", "copy.jpg")); !os.IsNotExist(err) {
		t.Fatalf("duplicate should be removed, err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "a.jpg")); err != nil {
		t.Fatalf("kept file must survive: %v", err)
	}
}

func TestRunDryRunDeletesNothing(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.jpg"), "same bytes")
	write(t, filepath.Join(root, "b.jpg"), "same bytes")

	summary, err := Run(context.Background(), Options{Root: root, DryRun: true}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Removed != 1 {
		t.Fatalf("dry run should report intent: %+v", summary)
	}
	for _, name := range []string{"a.jpg", "b.jpg"} {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			t.Fatalf("dry run must not delete %s: %v", name, err)
		}
	}
}

func TestRunIgnoresNonMedia(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "a.txt"), "same bytes")
	write(t, filepath.Join(root, "b.txt"), "same bytes")

	summary, err := Run(context.Background(), Options{Root: root}, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Scanned != 0 || summary.Removed != 0 {
		t.Fatalf("non-media files must be ignored: %+v", summary)
	}
}

func TestRunMissingRoot(t *testing.T) {
	if _, err := Run(context.Background(), Options{
		Root: filepath.Join(t.TempDir(), "nope"),
	}, logging.NewNop()); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := FormatSize(tc.in); got != tc.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
