package students

import (
	"strconv"
	"strings"
)

// CleanName normalizes a student name: whitespace runs collapse to single
// spaces and every word gets its first letter upper-cased with the rest
// lowered. Characters after an apostrophe or hyphen stay lower-cased.
// Returns "" for empty input.
func CleanName(raw string) string {
	words := strings.Fields(raw)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ParseAmount converts raw form input to a number. Empty or unparsable
// input counts as 0 rather than an error.
func ParseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return amount
}
