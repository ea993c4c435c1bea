package rename

import (
	"errors"
	"testing"
)

func TestValidatePattern(t *testing.T) {
	valid := []string{
		"%tn %tt",
		"%dn-%tn %tt",
		"%track-number - %track-title",
		"%tts",
		"%aa - %tt",
	}
	for _, pattern := range valid {
		if err := ValidatePattern(pattern); err != nil {
			t.Errorf("ValidatePattern(%q) = %v, want nil", pattern, err)
		}
	}

	invalid := []string{
		"",
		"%aa - %at",
		"no placeholders at all",
		"%dn %dt",
	}
	for _, pattern := range invalid {
		err := ValidatePattern(pattern)
		if !errors.Is(err, ErrPatternInvalid) {
			t.Errorf("ValidatePattern(%q) = %v, want ErrPatternInvalid", pattern, err)
		}
	}
}
