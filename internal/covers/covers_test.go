package covers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/etiq/internal/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func searchConfig() *config.Config {
	cfg := config.NewCLI()
	resolved, err := config.Resolve(cfg, "")
	if err != nil {
		panic(err)
	}
	return resolved
}

func TestSearchExactNameBeatsCandidates(t *testing.T) {
	dir := t.TempDir()
	music := filepath.Join(dir, "track.flac")
	touch(t, music)
	touch(t, filepath.Join(dir, "cover.jpg"))
	touch(t, filepath.Join(dir, "art.jpg"))

	cfg := searchConfig()
	cfg.PictureFront = "art.jpg"

	front, _, err := Search(music, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if front == nil || filepath.Base(front.Path) != "art.jpg" {
		t.Errorf("front = %v, want art.jpg", front)
	}
}

func TestSearchCandidateOrder(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    string
	}{
		{"first candidate wins", []string{"front.jpg", "cover.jpg", "folder.jpg"}, "front.jpg"},
		{"second when first missing", []string{"cover.jpg", "folder.jpg"}, "cover.jpg"},
		{"third when others missing", []string{"folder.jpg"}, "folder.jpg"},
		{"nothing found", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			music := filepath.Join(dir, "track.flac")
			touch(t, music)
			for _, name := range tt.present {
				touch(t, filepath.Join(dir, name))
			}

			front, _, err := Search(music, searchConfig())
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			got := ""
			if front != nil {
				got = filepath.Base(front.Path)
			}
			if got != tt.want {
				t.Errorf("front = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchParentFolder(t *testing.T) {
	root := t.TempDir()
	music := filepath.Join(root, "album", "track.flac")
	touch(t, music)
	touch(t, filepath.Join(root, "front.jpg"))

	front, _, err := Search(music, searchConfig())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if front == nil || front.Path != filepath.Join(root, "front.jpg") {
		t.Errorf("front = %v, want parent front.jpg", front)
	}
}

func TestSearchConfiguredFolderBeforeOwnFolderCandidates(t *testing.T) {
	root := t.TempDir()
	music := filepath.Join(root, "album", "track.flac")
	touch(t, music)
	touch(t, filepath.Join(root, "scans", "front.jpg"))
	touch(t, filepath.Join(root, "album", "cover.jpg"))

	cfg := searchConfig()
	cfg.PictureSearchFolders = append([]string{filepath.Join("..", "scans")}, cfg.PictureSearchFolders...)

	front, _, err := Search(music, cfg)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if front == nil || front.Path != filepath.Join(root, "scans", "front.jpg") {
		t.Errorf("front = %v, want scans/front.jpg", front)
	}
}

func TestSearchBackSide(t *testing.T) {
	dir := t.TempDir()
	music := filepath.Join(dir, "track.mp3")
	touch(t, music)
	touch(t, filepath.Join(dir, "back.jpg"))

	front, back, err := Search(music, searchConfig())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if front != nil {
		t.Errorf("front = %v, want none", front)
	}
	if back == nil || filepath.Base(back.Path) != "back.jpg" {
		t.Errorf("back = %v, want back.jpg", back)
	}
	if back != nil && back.Side != SideBack {
		t.Errorf("back.Side = %v, want SideBack", back.Side)
	}
}

func TestSearchMissingMusicFile(t *testing.T) {
	if _, _, err := Search(filepath.Join(t.TempDir(), "gone.flac"), searchConfig()); err == nil {
		t.Error("Search on a missing file should fail")
	}
}
