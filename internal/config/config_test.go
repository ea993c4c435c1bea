//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llehouerou/etiq/internal/rename"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestResolveCLIOnly(t *testing.T) {
	cli := NewCLI()
	cli.AlbumArtist = "Tool"
	cli.TrackCount = true

	cfg, err := Resolve(cli, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.AlbumArtist != "Tool" {
		t.Errorf("AlbumArtist = %q, want %q", cfg.AlbumArtist, "Tool")
	}
	if !cfg.TrackCount {
		t.Error("TrackCount not carried over from CLI")
	}
	if cfg.TrackGenreNumber != -1 {
		t.Errorf("TrackGenreNumber = %d, want -1", cfg.TrackGenreNumber)
	}
	if cfg.PictureMaxSize != DefaultMaxPictureSize {
		t.Errorf("PictureMaxSize = %d, want %d", cfg.PictureMaxSize, DefaultMaxPictureSize)
	}
}

func TestResolveFileValues(t *testing.T) {
	path := writeConfig(t, `
album_artist = "Mogwai"
track_date = "1999"
dry_run = true
picture_max_size = 200
track_genre_number = 17
`)

	cfg, err := Resolve(NewCLI(), path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.AlbumArtist != "Mogwai" {
		t.Errorf("AlbumArtist = %q, want %q", cfg.AlbumArtist, "Mogwai")
	}
	if cfg.TrackDate != "1999" {
		t.Errorf("TrackDate = %q, want %q", cfg.TrackDate, "1999")
	}
	if !cfg.DryRun {
		t.Error("DryRun not read from config file")
	}
	if cfg.PictureMaxSize != 200 {
		t.Errorf("PictureMaxSize = %d, want 200", cfg.PictureMaxSize)
	}
	if cfg.TrackGenreNumber != 17 {
		t.Errorf("TrackGenreNumber = %d, want 17", cfg.TrackGenreNumber)
	}
}

func TestResolveCLIWinsOverFile(t *testing.T) {
	path := writeConfig(t, `
album_artist = "Mogwai"
track_date = "1999"
picture_max_size = 200
`)

	cli := NewCLI()
	cli.AlbumArtist = "Tool"
	cli.PictureMaxSize = 0

	cfg, err := Resolve(cli, path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.AlbumArtist != "Tool" {
		t.Errorf("AlbumArtist = %q, want CLI value %q", cfg.AlbumArtist, "Tool")
	}
	if cfg.TrackDate != "1999" {
		t.Errorf("TrackDate = %q, want file value %q", cfg.TrackDate, "1999")
	}
	if cfg.PictureMaxSize != 0 {
		t.Errorf("PictureMaxSize = %d, want explicit CLI 0", cfg.PictureMaxSize)
	}
}

func TestResolveBooleansCombineWithOr(t *testing.T) {
	path := writeConfig(t, "stop_on_error = true\n")

	cfg, err := Resolve(NewCLI(), path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !cfg.StopOnError {
		t.Error("StopOnError = false, want file value true")
	}

	cli := NewCLI()
	cli.DryRun = true
	cfg, err = Resolve(cli, path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !cfg.DryRun || !cfg.StopOnError {
		t.Error("booleans from CLI and file should both stay on")
	}
}

func TestResolveMalformedFileFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "= this is [ not toml\n")

	cfg, err := Resolve(NewCLI(), path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.AlbumArtist != "" {
		t.Errorf("AlbumArtist = %q, want empty defaults", cfg.AlbumArtist)
	}
	if cfg.PictureMaxSize != DefaultMaxPictureSize {
		t.Errorf("PictureMaxSize = %d, want %d", cfg.PictureMaxSize, DefaultMaxPictureSize)
	}
}

func TestResolveMissingFileFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Resolve(NewCLI(), missing)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.AlbumArtist != "" {
		t.Errorf("AlbumArtist = %q, want empty defaults", cfg.AlbumArtist)
	}
}

func TestResolveCandidateDefaults(t *testing.T) {
	cfg, err := Resolve(NewCLI(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	wantFront := []string{"front.jpg", "cover.jpg", "folder.jpg"}
	if len(cfg.PictureFrontCandidates) != len(wantFront) {
		t.Fatalf("PictureFrontCandidates = %v, want %v", cfg.PictureFrontCandidates, wantFront)
	}
	for i, name := range wantFront {
		if cfg.PictureFrontCandidates[i] != name {
			t.Errorf("PictureFrontCandidates[%d] = %q, want %q", i, cfg.PictureFrontCandidates[i], name)
		}
	}
	if len(cfg.PictureBackCandidates) != 1 || cfg.PictureBackCandidates[0] != "back.jpg" {
		t.Errorf("PictureBackCandidates = %v, want [back.jpg]", cfg.PictureBackCandidates)
	}
}

func TestResolveSearchFoldersAlwaysEndWithDotAndParent(t *testing.T) {
	cli := NewCLI()
	cli.PictureSearchFolders = []string{"artwork"}

	cfg, err := Resolve(cli, "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := []string{"artwork", ".", ".."}
	if len(cfg.PictureSearchFolders) != len(want) {
		t.Fatalf("PictureSearchFolders = %v, want %v", cfg.PictureSearchFolders, want)
	}
	for i, folder := range want {
		if cfg.PictureSearchFolders[i] != folder {
			t.Errorf("PictureSearchFolders[%d] = %q, want %q", i, cfg.PictureSearchFolders[i], folder)
		}
	}
}

func TestResolveInvalidPatternFails(t *testing.T) {
	cli := NewCLI()
	cli.RenamePattern = "%aa - %at"

	_, err := Resolve(cli, "")
	if !errors.Is(err, rename.ErrPatternInvalid) {
		t.Errorf("Resolve() error = %v, want ErrPatternInvalid", err)
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath()
	want := filepath.Join("etiq", "config.toml")
	if !strings.HasSuffix(got, want) {
		t.Errorf("DefaultPath() = %q, want suffix %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
