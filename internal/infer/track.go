package infer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sameExtSiblings lists the names of regular files in the music file's
// directory sharing its extension (case-insensitive), sorted by name.
func sameExtSiblings(abs string) ([]string, error) {
	parent := filepath.Dir(abs)
	ext := filepath.Ext(abs)

	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", parent, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// TrackCount counts the same-extension siblings of a music file and
// formats the count zero-padded: "07" for 7, "103" once there are 100 or
// more files.
func TrackCount(path string) (string, error) {
	abs, err := canonicalize(path)
	if err != nil {
		return "", err
	}

	names, err := sameExtSiblings(abs)
	if err != nil {
		return "", err
	}

	if len(names) < 100 {
		return fmt.Sprintf("%02d", len(names)), nil
	}
	return fmt.Sprintf("%03d", len(names)), nil
}

// TrackNumber gives the 1-based position of a music file among its
// same-extension siblings sorted by name.
func TrackNumber(path string) (int, error) {
	abs, err := canonicalize(path)
	if err != nil {
		return 0, err
	}

	names, err := sameExtSiblings(abs)
	if err != nil {
		return 0, err
	}

	base := filepath.Base(abs)
	for i, name := range names {
		if name == base {
			return i + 1, nil
		}
	}
	return 0, nil
}
