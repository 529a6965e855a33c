package media

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"IMG_0001.jpg", KindPhoto},
		{"IMG_0001.JPG", KindPhoto},
		{"scan.TIFF", KindPhoto},
		{"raw.NEF", KindPhoto},
		{"raw.cr2", KindPhoto},
		{"raw.arw", KindPhoto},
		{"phone.heic", KindPhoto},
		{"clip.mp4", KindVideo},
		{"clip.MOV", KindVideo},
		{"tape.mts", KindVideo},
		{"movie.mkv", KindVideo},
		{"notes.txt", KindOther},
		{"archive.jpg.zip", KindOther},
		{"noextension", KindOther},
		{"photos/nested/pic.png", KindPhoto},
	}
	for _, tc := range cases {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestHidden(t *testing.T) {
	if !Hidden(".DS_Store") {
		t.Error("dotfiles should be hidden")
	}
	if Hidden("visible.jpg") {
		t.Error("regular names should not be hidden")
	}
}

func TestStatsAddAndCount(t *testing.T) {
	var s Stats
	s.Count(KindPhoto)
	s.Count(KindPhoto)
	s.Count(KindVideo)
	s.Count(KindOther)

	other := Stats{Photos: 1, Videos: 2, Other: 3}
	s.Add(other)

	if s.Photos != 3 || s.Videos != 3 || s.Other != 4 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.Total() != 10 {
		t.Fatalf("Total = %d, want 10", s.Total())
	}
}
