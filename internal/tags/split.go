package tags

import (
	"strconv"
	"strings"
)

// needSplit reports whether a disc or track value packs a number and a
// total into one string, either "2 of 3" or "2/3" style.
func needSplit(value string) bool {
	return strings.Contains(value, "of") || strings.Contains(value, "/")
}

// splitPair splits a combined value into its number and total. Missing
// or unparsable parts default to 1.
func splitPair(value string) (num, total int) {
	var left, right string
	if before, after, ok := strings.Cut(value, "of"); ok {
		left, right = before, after
	} else if before, after, ok := strings.Cut(value, "/"); ok {
		left, right = before, after
	} else {
		left = value
	}
	return parseOrOne(left), parseOrOne(right)
}

func parseOrOne(s string) int {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 1
	}
	return int(n)
}

// splitNumbering normalizes a numbering value found in an existing tag.
// Combined forms come back as separate number and total strings; plain
// values pass through with an empty total.
func splitNumbering(value string) (number, total string) {
	if value == "" || !needSplit(value) {
		return value, ""
	}
	n, t := splitPair(value)
	return strconv.Itoa(n), strconv.Itoa(t)
}
