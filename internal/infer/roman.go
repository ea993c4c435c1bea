package infer

import "strings"

type romanNumeral struct {
	symbol string
	value  int
}

// Ordered by value so greedy prefix matching picks the subtractive
// forms (CM, XC, ...) before their components.
var romanNumerals = []romanNumeral{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// RomanToDecimal decodes a Roman numeral string, case-insensitively.
// Symbols are matched greedily left to right; an unmatched remainder
// contributes nothing, and an empty string decodes to 0.
func RomanToDecimal(roman string) int {
	s := strings.ToUpper(roman)
	total := 0
	for s != "" {
		matched := false
		for _, n := range romanNumerals {
			if strings.HasPrefix(s, n.symbol) {
				total += n.value
				s = s[len(n.symbol):]
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return total
}
