package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/etiq/internal/console"
)

// ErrCollisionUnresolved is returned when the target path and two
// uniquified fallbacks all exist already.
var ErrCollisionUnresolved = errors.New("rename target already exists")

// Aliases whose values hold a disc or track position. They render
// zero-padded to two digits so lexical order matches play order.
var numericAliases = map[string]bool{
	"%disc-number":        true,
	"%dn":                 true,
	"%disc-number-total":  true,
	"%dnt":                true,
	"%dt":                 true,
	"%track-number":       true,
	"%tn":                 true,
	"%track-number-total": true,
	"%tnt":                true,
	"%to":                 true,
}

// expand replaces every alias occurring in pattern with its value.
// Aliases are applied longest first so a short alias never eats the
// head of a longer one ("%tn" inside "%tnt").
func expand(pattern string, values map[string]string) string {
	aliases := make([]string, 0, len(values))
	for alias := range values {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})

	name := pattern
	for _, alias := range aliases {
		if !strings.Contains(name, alias) {
			continue
		}
		name = strings.ReplaceAll(name, alias, replacementFor(alias, values[alias]))
	}
	return name
}

// replacementFor turns a tag value into filename text. Missing values
// degrade to "00" or "unknown" with a warning rather than aborting the
// rename.
func replacementFor(alias, value string) string {
	if numericAliases[alias] {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			console.Warning.Printf("no usable value for %s, using 00\n", alias)
			return "00"
		}
		return fmt.Sprintf("%02d", n)
	}
	if value == "" {
		console.Warning.Printf("no value for %s, using unknown\n", alias)
		return "unknown"
	}
	return value
}

// cleanFilename strips characters that break paths or confuse shells.
func cleanFilename(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, ":", " -")
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(s)
}

// Target computes the path a file would be renamed to: the expanded,
// sanitized pattern in the file's own directory, keeping the original
// extension. Pure, no filesystem access.
func Target(path, pattern string, values map[string]string) string {
	name := cleanFilename(expand(pattern, values))
	return filepath.Join(filepath.Dir(path), name+filepath.Ext(path))
}

// Apply renames path according to pattern and returns the final path.
// Rendering onto the current path is a no-op. An occupied target gets
// a time-derived " (nnnn)" suffix, retried once with a fresh value
// before giving up with ErrCollisionUnresolved. With dryRun the chosen
// target is returned without touching the filesystem.
func Apply(path, pattern string, values map[string]string, dryRun bool) (string, error) {
	base := Target(path, pattern, values)
	if base == path {
		return path, nil
	}

	target := base
	for attempt := 0; ; attempt++ {
		if _, err := os.Stat(target); errors.Is(err, fs.ErrNotExist) {
			break
		}
		if attempt == 2 {
			return "", fmt.Errorf("%w: %s", ErrCollisionUnresolved, base)
		}
		target = uniqueTarget(base)
	}

	if dryRun {
		return target, nil
	}
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("rename %s: %w", path, err)
	}
	return target, nil
}

// uniqueTarget derives a sibling of target with a " (nnnn)" suffix
// taken from the microsecond clock.
func uniqueTarget(target string) string {
	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	n := time.Now().UnixMicro() % 10_000_000
	return fmt.Sprintf("%s (%04d)%s", stem, n, ext)
}
