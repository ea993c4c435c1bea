// Package covers locates cover art for a music file and prepares it for
// embedding: a prioritized search over configured names and folders, an
// aspect-ratio gate against composite scans, and a bounded downscale of
// oversized images.
package covers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/llehouerou/etiq/internal/config"
)

// Side tells a front cover from a back cover.
type Side int

const (
	SideFront Side = iota
	SideBack
)

func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

// Candidate is a cover image found on disk for one side.
type Candidate struct {
	Path string
	Side Side
}

// Search locates the front and back cover for a music file. Either side
// resolves to nil when nothing is found, which is not an error; only a
// music file path that cannot be resolved fails.
func Search(musicPath string, cfg *config.Config) (front, back *Candidate, err error) {
	abs, err := filepath.Abs(musicPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve %s: %w", musicPath, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, nil, fmt.Errorf("resolve %s: %w", musicPath, err)
	}
	dir := filepath.Dir(abs)

	if path := searchSide(dir, cfg.PictureFront, cfg.PictureFrontCandidates, cfg.PictureSearchFolders); path != "" {
		front = &Candidate{Path: path, Side: SideFront}
	}
	if path := searchSide(dir, cfg.PictureBack, cfg.PictureBackCandidates, cfg.PictureSearchFolders); path != "" {
		back = &Candidate{Path: path, Side: SideBack}
	}
	return front, back, nil
}

// searchSide runs the two-pass search for one side: the configured exact
// name in the music file's directory and then each search folder, and
// only when that misses, the fallback candidate names folder by folder.
// First hit wins.
func searchSide(musicDir, exact string, candidates, folders []string) string {
	if exact != "" {
		if filepath.IsAbs(exact) {
			if fileExists(exact) {
				return exact
			}
		} else {
			if path := findInFolder(musicDir, musicDir, exact); path != "" {
				return path
			}
			for _, folder := range folders {
				if path := findInFolder(musicDir, folder, exact); path != "" {
					return path
				}
			}
		}
	}

	for _, folder := range folders {
		for _, name := range candidates {
			if path := findInFolder(musicDir, folder, name); path != "" {
				return path
			}
		}
	}
	return ""
}

// findInFolder checks for name inside folder, resolving a relative
// folder against the music file's directory.
func findInFolder(musicDir, folder, name string) string {
	if !filepath.IsAbs(folder) {
		folder = filepath.Join(musicDir, folder)
	}
	path := filepath.Join(folder, name)
	if fileExists(path) {
		return path
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
