package organize

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediajanitor/internal/logging"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

func TestChooseTargetBucketPlurality(t *testing.T) {
	dates := []time.Time{
		date(2019, time.June, 1),
		date(2019, time.July, 2),
		date(2019, time.July, 10),
		date(2019, time.July, 11),
		date(2019, time.July, 15),
		date(2019, time.July, 28),
		date(2019, time.August, 3),
		date(2019, time.August, 20),
	}
	got := ChooseTargetBucket(dates)
	want := Bucket{Year: 2019, Month: 7}
	if got != want {
		t.Fatalf("ChooseTargetBucket = %v, want %v", got, want)
	}
}

func TestChooseTargetBucketTieGoesToFirstSeen(t *testing.T) {
	dates := []time.Time{
		date(2020, time.March, 1),
		date(2020, time.April, 1),
		date(2020, time.April, 2),
		date(2020, time.March, 2),
	}
	got := ChooseTargetBucket(dates)
	want := Bucket{Year: 2020, Month: 3}
	if got != want {
		t.Fatalf("tie should go to first-seen bucket: got %v, want %v", got, want)
	}
}

func TestBucketPath(t *testing.T) {
	b := Bucket{Year: 2019, Month: 7}
	if b.Path() != filepath.Join("2019", "07") {
		t.Fatalf("Path = %q", b.Path())
	}
	if b.String() != "2019/07" {
		t.Fatalf("String = %q", b.String())
	}
}

func TestClassifyFolderCountsAndDates(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	july := date(2019, time.July, 4)
	august := date(2019, time.August, 1)
	writeDated(t, filepath.Join(dir, "a.jpg"), july)
	writeDated(t, filepath.Join(nested, "b.jpg"), july)
	writeDated(t, filepath.Join(nested, "c.mp4"), august)
	writeDated(t, filepath.Join(dir, "notes.txt"), july)
	writeDated(t, filepath.Join(dir, ".hidden.jpg"), july)

	summary := ClassifyFolder(dir, logging.NewNop())
	if summary.Photos != 2 || summary.Videos != 1 {
		t.Fatalf("counts = %d photos / %d videos, want 2/1", summary.Photos, summary.Videos)
	}
	if len(summary.Dates) != summary.FileCount() {
		t.Fatalf("dates length %d != file count %d", len(summary.Dates), summary.FileCount())
	}
}

func TestClassifyFolderEmpty(t *testing.T) {
	dir := t.TempDir()
	writeDated(t, filepath.Join(dir, "readme.md"), date(2020, time.January, 1))

	summary := ClassifyFolder(dir, logging.NewNop())
	if len(summary.Dates) != 0 {
		t.Fatalf("folder with no media should yield no dates, got %d", len(summary.Dates))
	}
}

func TestIsYearName(t *testing.T) {
	cases := map[string]bool{
		"2020":     true,
		"1999":     true,
		"20":       false,
		"20201":    false,
		"202a":     false,
		"Vacation": false,
	}
	for name, want := range cases {
		if got := isYearName(name); got != want {
			t.Errorf("isYearName(%q) = %v, want %v", name, got, want)
		}
	}
}

func writeDated(t *testing.T, path string, ts time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, ts, ts); err != nil {
		t.Fatal(err)
	}
}
