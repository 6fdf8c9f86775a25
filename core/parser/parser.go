// Package parser converts raw grid-in text into a canonical value.Value.
//
// Grammar, in precedence order:
//
//	interval := ("(" | "[") bound "," bound (")" | "]")
//	fraction := number "/" number
//	number   := digits | digits? "." digits?
//
// A whole answer key may list alternatives separated by ";".
// Parsing never fails: malformed text yields value.Unparseable.
package parser

import (
	"math/big"
	"regexp"
	"strings"

	"gridin/core/value"
)

// intervalPattern splits a range at its last comma
var intervalPattern = regexp.MustCompile(`^([\(\[])(.*),(.*)([\)\]])$`)

// IntervalText is the textual shape of an interval before its bounds are parsed
type IntervalText struct {
	Lower          string
	Upper          string
	LowerInclusive bool
	UpperInclusive bool
}

// SplitInterval matches text against the interval form
func SplitInterval(text string) (IntervalText, bool) {
	m := intervalPattern.FindStringSubmatch(text)
	if m == nil {
		return IntervalText{}, false
	}
	return IntervalText{
		Lower:          m[2],
		Upper:          m[3],
		LowerInclusive: m[1] == "[",
		UpperInclusive: m[4] == "]",
	}, true
}

// SplitAlternatives splits an answer key on ";". Trailing empty segments
// are dropped, so "6;9;" lists two alternatives.
func SplitAlternatives(text string) []string {
	parts := strings.Split(text, ";")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// ParseAnswer parses an answer key, which may list alternatives
func ParseAnswer(text string) value.Value {
	if !strings.Contains(text, ";") {
		return Parse(text)
	}

	segments := SplitAlternatives(text)
	items := make([]value.Value, len(segments))
	for i, s := range segments {
		items[i] = Parse(s)
	}
	return value.NewAlternatives(items...)
}

// Parse parses a single grid-in segment.
//
// A result of zero is only believed when the digit 0 appears in the text;
// otherwise the text was noise such as "...." or " // " and the result is
// value.Unparseable.
func Parse(text string) value.Value {
	v := parse(text)
	if n, ok := v.(value.Number); ok && n.IsZero() && !strings.Contains(text, "0") {
		return value.Unparseable{}
	}
	return v
}

func parse(text string) value.Value {
	if iv, ok := SplitInterval(text); ok {
		return parseInterval(iv)
	}
	if strings.Contains(text, "/") {
		return parseFraction(text)
	}
	return value.NewLiteral(scanLiteral(text))
}

func parseInterval(iv IntervalText) value.Value {
	lower, ok := Parse(iv.Lower).(value.Number)
	if !ok {
		return value.Unparseable{}
	}
	upper, ok := Parse(iv.Upper).(value.Number)
	if !ok {
		return value.Unparseable{}
	}
	return value.Interval{
		Lower:          lower,
		Upper:          upper,
		LowerInclusive: iv.LowerInclusive,
		UpperInclusive: iv.UpperInclusive,
	}
}

// parseFraction divides the first two "/"-separated pieces. Integer
// pieces divide exactly; a decimal piece makes the quotient a float,
// which is then rationalized back to a small fraction.
func parseFraction(text string) value.Value {
	parts := strings.Split(text, "/")

	den, ok := Parse(parts[1]).(value.Number)
	if !ok || den.IsZero() {
		return value.Unparseable{}
	}
	num, ok := Parse(parts[0]).(value.Number)
	if !ok {
		return value.Unparseable{}
	}

	if num.IsInt() && den.IsInt() {
		return value.NewRatio(new(big.Rat).Quo(num.Rat(), den.Rat()))
	}

	q, ok := Rationalize(num.Float64() / den.Float64())
	if !ok {
		return value.Unparseable{}
	}
	return value.NewRatio(q)
}
