// Package config merges CLI flags with the optional TOML config file
// into the effective settings for a run. CLI values always win over
// file values; booleans combine with OR so either side can switch a
// behavior on.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/etiq/internal/console"
	"github.com/llehouerou/etiq/internal/rename"
)

// DefaultMaxPictureSize is the edge limit applied to embedded pictures
// when neither the CLI nor the config file sets one.
const DefaultMaxPictureSize = 500

var (
	defaultFrontCandidates = []string{"front.jpg", "cover.jpg", "folder.jpg"}
	defaultBackCandidates  = []string{"back.jpg"}
)

// Config holds every option of a run. The same struct serves three
// roles: the CLI flags bind to one instance, the config file unmarshals
// into another, and Resolve merges them into the effective settings.
//
// DiscNumber and TrackNumber accept combined forms ("2", "2/3",
// "2 of 3"). DiscNumberCount and TrackCount switch on inference from
// the folder layout. TrackGenreNumber and PictureMaxSize use -1 as
// their unset marker because 0 is meaningful for both (genre code 0,
// resizing disabled). PictureSearchFolders always gets "." and ".."
// appended after the configured entries.
type Config struct {
	AlbumArtist       string `koanf:"album_artist"`
	AlbumArtistSort   string `koanf:"album_artist_sort"`
	AlbumTitle        string `koanf:"album_title"`
	AlbumTitleSort    string `koanf:"album_title_sort"`
	DiscNumber        string `koanf:"disc_number"`
	DiscNumberCount   bool   `koanf:"disc_number_count"`
	TrackArtist       string `koanf:"track_artist"`
	TrackArtistSort   string `koanf:"track_artist_sort"`
	TrackAlbumArtist  string `koanf:"track_album_artist"`
	TrackTitle        string `koanf:"track_title"`
	TrackTitleSort    string `koanf:"track_title_sort"`
	TrackNumber       string `koanf:"track_number"`
	TrackCount        bool   `koanf:"track_count"`
	TrackGenre        string `koanf:"track_genre"`
	TrackGenreNumber  int    `koanf:"track_genre_number"`
	TrackComposer     string `koanf:"track_composer"`
	TrackComposerSort string `koanf:"track_composer_sort"`
	TrackDate         string `koanf:"track_date"`
	TrackComments     string `koanf:"track_comments"`

	PictureFront           string   `koanf:"picture_front"`
	PictureBack            string   `koanf:"picture_back"`
	PictureFrontCandidates []string `koanf:"picture_front_candidates"`
	PictureBackCandidates  []string `koanf:"picture_back_candidates"`
	PictureSearchFolders   []string `koanf:"picture_search_folders"`
	PictureMaxSize         int      `koanf:"picture_max_size"`

	RenamePattern string `koanf:"rename_file"`

	StopOnError  bool `koanf:"stop_on_error"`
	DryRun       bool `koanf:"dry_run"`
	SingleThread bool `koanf:"single_thread"`
	PrintSummary bool `koanf:"print_summary"`
	DetailOff    bool `koanf:"detail_off"`
}

// NewCLI returns a Config with every option unset, the state the CLI
// flags bind over before parsing.
func NewCLI() Config {
	return Config{
		TrackGenreNumber: -1,
		PictureMaxSize:   -1,
	}
}

// DefaultPath is the config file used when --config-file is given
// without a value.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "etiq", "config.toml")
}

// Resolve merges CLI-bound options over the config file at configPath
// (none is loaded when configPath is empty) and applies the defaults.
// A broken config file degrades to defaults with a warning; an invalid
// rename pattern is a hard error.
func Resolve(cli Config, configPath string) (*Config, error) {
	cfg := loadFile(configPath)
	merge(&cfg, cli)
	applyDefaults(&cfg)

	if cfg.RenamePattern != "" {
		if err := rename.ValidatePattern(cfg.RenamePattern); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func loadFile(path string) Config {
	cfg := NewCLI()
	if path == "" {
		return cfg
	}

	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		console.Warning.Printf("config file %s not found, using defaults\n", path)
		return cfg
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		console.Warning.Printf("cannot parse config file %s: %v\n", path, err)
		return cfg
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		console.Warning.Printf("cannot read config file %s: %v\n", path, err)
		return NewCLI()
	}
	return cfg
}

// merge overlays CLI values onto the file values. Strings count as
// given when non-empty, the numeric options when non-negative, and
// booleans combine with OR.
func merge(cfg *Config, cli Config) {
	mergeString(&cfg.AlbumArtist, cli.AlbumArtist)
	mergeString(&cfg.AlbumArtistSort, cli.AlbumArtistSort)
	mergeString(&cfg.AlbumTitle, cli.AlbumTitle)
	mergeString(&cfg.AlbumTitleSort, cli.AlbumTitleSort)
	mergeString(&cfg.DiscNumber, cli.DiscNumber)
	mergeString(&cfg.TrackArtist, cli.TrackArtist)
	mergeString(&cfg.TrackArtistSort, cli.TrackArtistSort)
	mergeString(&cfg.TrackAlbumArtist, cli.TrackAlbumArtist)
	mergeString(&cfg.TrackTitle, cli.TrackTitle)
	mergeString(&cfg.TrackTitleSort, cli.TrackTitleSort)
	mergeString(&cfg.TrackNumber, cli.TrackNumber)
	mergeString(&cfg.TrackGenre, cli.TrackGenre)
	mergeString(&cfg.TrackComposer, cli.TrackComposer)
	mergeString(&cfg.TrackComposerSort, cli.TrackComposerSort)
	mergeString(&cfg.TrackDate, cli.TrackDate)
	mergeString(&cfg.TrackComments, cli.TrackComments)
	mergeString(&cfg.PictureFront, cli.PictureFront)
	mergeString(&cfg.PictureBack, cli.PictureBack)
	mergeString(&cfg.RenamePattern, cli.RenamePattern)

	if len(cli.PictureFrontCandidates) > 0 {
		cfg.PictureFrontCandidates = cli.PictureFrontCandidates
	}
	if len(cli.PictureBackCandidates) > 0 {
		cfg.PictureBackCandidates = cli.PictureBackCandidates
	}
	if len(cli.PictureSearchFolders) > 0 {
		cfg.PictureSearchFolders = cli.PictureSearchFolders
	}
	if cli.TrackGenreNumber >= 0 {
		cfg.TrackGenreNumber = cli.TrackGenreNumber
	}
	if cli.PictureMaxSize >= 0 {
		cfg.PictureMaxSize = cli.PictureMaxSize
	}

	cfg.DiscNumberCount = cfg.DiscNumberCount || cli.DiscNumberCount
	cfg.TrackCount = cfg.TrackCount || cli.TrackCount
	cfg.StopOnError = cfg.StopOnError || cli.StopOnError
	cfg.DryRun = cfg.DryRun || cli.DryRun
	cfg.SingleThread = cfg.SingleThread || cli.SingleThread
	cfg.PrintSummary = cfg.PrintSummary || cli.PrintSummary
	cfg.DetailOff = cfg.DetailOff || cli.DetailOff
}

func mergeString(dst *string, cli string) {
	if cli != "" {
		*dst = cli
	}
}

func applyDefaults(cfg *Config) {
	if len(cfg.PictureFrontCandidates) == 0 {
		cfg.PictureFrontCandidates = append([]string(nil), defaultFrontCandidates...)
	}
	if len(cfg.PictureBackCandidates) == 0 {
		cfg.PictureBackCandidates = append([]string(nil), defaultBackCandidates...)
	}
	// The music file's own folder and its parent are always searched,
	// after any user-configured folder.
	cfg.PictureSearchFolders = append(cfg.PictureSearchFolders, ".", "..")

	if cfg.PictureMaxSize < 0 {
		cfg.PictureMaxSize = DefaultMaxPictureSize
	}

	cfg.PictureFront = expandPath(cfg.PictureFront)
	cfg.PictureBack = expandPath(cfg.PictureBack)
	for i, folder := range cfg.PictureSearchFolders {
		cfg.PictureSearchFolders[i] = expandPath(folder)
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
