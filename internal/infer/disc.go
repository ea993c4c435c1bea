// Package infer derives disc and track numbering from the directory
// layout around a music file: "CD 2" style parent folders give the disc
// number, sibling folders the disc count, and same-extension sibling
// files the track position and total.
package infer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Directory name prefixes that mark a per-disc folder.
var discPrefixes = []string{"CD", "DISC", "DISK", "PART"}

// canonicalize resolves path to an absolute path with symlinks evaluated.
// The file must exist; a failure here is propagated, never defaulted.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

// DiscNumber derives the disc number of a music file from its parent
// directory name. "CD 2", "Disc2" and "CDII" all give 2; a parent
// without a recognized prefix gives 1.
func DiscNumber(path string) (int, error) {
	abs, err := canonicalize(path)
	if err != nil {
		return 0, err
	}

	name := strings.ToUpper(filepath.Base(filepath.Dir(abs)))

	recognized := false
	for _, p := range discPrefixes {
		if strings.HasPrefix(name, p) {
			recognized = true
			break
		}
	}
	if !recognized {
		return 1, nil
	}

	// Strip the prefix tokens, then cut at the first space or dash so
	// "CD 3 of 4" reduces to "3".
	for _, p := range discPrefixes {
		name = strings.TrimSpace(strings.ReplaceAll(name, p, ""))
	}
	if i := strings.IndexAny(name, " -"); i >= 0 {
		name = name[:i]
	}

	dn := 0
	if v, err := strconv.ParseUint(name, 10, 16); err == nil {
		dn = int(v)
	}
	if dn == 0 {
		dn = RomanToDecimal(name)
		if dn == 0 {
			dn = 1
		}
	}
	return dn, nil
}

// DiscCount counts the per-disc folders next to the music file's parent,
// i.e. the grandparent's child directories whose name starts with a disc
// prefix. A layout without any such folder still counts as one disc.
func DiscCount(path string) (int, error) {
	abs, err := canonicalize(path)
	if err != nil {
		return 0, err
	}

	grandparent := filepath.Dir(filepath.Dir(abs))
	entries, err := os.ReadDir(grandparent)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", grandparent, err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := strings.ToUpper(entry.Name())
		for _, p := range discPrefixes {
			if strings.HasPrefix(name, p) {
				count++
				break
			}
		}
	}

	if count == 0 {
		return 1, nil
	}
	return count, nil
}
