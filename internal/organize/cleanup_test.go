package organize

import (
	"os"
	"path/filepath"
	"testing"

	"mediajanitor/internal/logging"
)

func TestCleanupRemovesEmptyTreesBottomUp(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755); err != nil {
		t.Fatal(err)
	}

	removed := Cleanup(root, logging.NewNop())
	if removed != 3 {
		t.Fatalf("removed = %d, want 3", removed)
	}
	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Fatalf("empty tree should be gone, err=%v", err)
	}
}

func TestCleanupSparesYearFoldersAndNonEmptyDirs(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "2019"), 0o755); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(root, "keep")
	if err := os.MkdirAll(keep, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(keep, "file.jpg"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	removed := Cleanup(root, logging.NewNop())
	if removed != 0 {
		t.Fatalf("removed = %d, want 0", removed)
	}
	if _, err := os.Stat(filepath.Join(root, "2019")); err != nil {
		t.Fatalf("empty year folder must be protected: %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("non-empty folder must remain: %v", err)
	}
}
