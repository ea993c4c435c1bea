package infer

import "testing"

func TestRomanToDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"I", 1},
		{"II", 2},
		{"IV", 4},
		{"iv", 4},
		{"IX", 9},
		{"XIV", 14},
		{"XC", 90},
		{"CM", 900},
		{"MCMXCIV", 1994},
		{"mmxxi", 2021},
		{"", 0},
		{"A", 0},
		{"XA", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RomanToDecimal(tt.input)
			if got != tt.want {
				t.Errorf("RomanToDecimal(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
