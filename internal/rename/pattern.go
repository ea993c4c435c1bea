package rename

import (
	"errors"
	"fmt"
	"strings"
)

// A usable pattern must reference the track somehow, otherwise every
// file in a folder renders to the same name.
var requiredAliases = []string{
	"%track-number", "%tn",
	"%track-title", "%tt",
	"%track-title-sort", "%tts",
}

// ErrPatternInvalid marks a rename pattern without any track-identifying
// placeholder. It is a configuration error, caught before any file is
// touched.
var ErrPatternInvalid = errors.New("invalid rename pattern")

// ValidatePattern checks that a pattern contains at least one
// track-number or track-title placeholder.
func ValidatePattern(pattern string) error {
	for _, alias := range requiredAliases {
		if strings.Contains(pattern, alias) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q contains none of %s",
		ErrPatternInvalid, pattern, strings.Join(requiredAliases, ", "))
}
