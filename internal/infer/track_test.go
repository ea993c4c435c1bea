package infer

import (
	"path/filepath"
	"testing"
)

func TestTrackCount(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "01. Intro.flac"))
	writeFile(t, filepath.Join(root, "02. Song.flac"))
	writeFile(t, filepath.Join(root, "03. Outro.FLAC"))
	writeFile(t, filepath.Join(root, "lone.mp3"))
	writeFile(t, filepath.Join(root, "cover.jpg"))

	tests := []struct {
		file string
		want string
	}{
		{"01. Intro.flac", "03"},
		{"lone.mp3", "01"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := TrackCount(filepath.Join(root, tt.file))
			if err != nil {
				t.Fatalf("TrackCount() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TrackCount(%s) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestTrackNumber(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "01. Intro.flac"))
	writeFile(t, filepath.Join(root, "02. Song.flac"))
	writeFile(t, filepath.Join(root, "10. Finale.flac"))
	writeFile(t, filepath.Join(root, "cover.jpg"))

	tests := []struct {
		file string
		want int
	}{
		{"01. Intro.flac", 1},
		{"02. Song.flac", 2},
		{"10. Finale.flac", 3},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := TrackNumber(filepath.Join(root, tt.file))
			if err != nil {
				t.Fatalf("TrackNumber() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TrackNumber(%s) = %d, want %d", tt.file, got, tt.want)
			}
		})
	}
}
