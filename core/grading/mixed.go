package grading

import (
	"math/big"
	"regexp"

	"gridin/core/parser"
	"gridin/core/value"
)

// mixedPattern is a digit followed by a one-digit fraction, e.g. "21/2"
var mixedPattern = regexp.MustCompile(`\A(\d)(\d/\d)\z`)

// MixedAnswer reports whether answer looks like a mixed number typed into
// the grid ("21/2" meaning 2 1/2) that would be correct if read that way.
// It drives a reminder to the student and never affects Correct.
func MixedAnswer(key, answer string) bool {
	m := mixedPattern.FindStringSubmatch(answer)
	if m == nil {
		return false
	}

	frac, ok := parser.Parse(m[2]).(value.Number)
	if !ok {
		return false
	}

	whole := big.NewRat(int64(m[1][0]-'0'), 1)
	mixed := new(big.Rat).Add(frac.Rat(), whole)

	// Rat.String always renders p/q, so the value is re-read as a fraction
	return Correct(key, mixed.String())
}
