// Package grading decides whether a student's grid-in response is an
// acceptable answer for an answer key.
//
// Decimal and integer keys must be matched exactly. Fraction keys accept
// the rounded or truncated decimal expansion. Interval keys accept any
// value inside the range, with tolerance at inclusive ends. A key listing
// alternatives accepts anything one of them accepts.
package grading

import (
	"fmt"

	"gridin/core/parser"
	"gridin/core/tolerance"
	"gridin/core/value"
)

// Correct reports whether response is an acceptable answer for the key text
func Correct(key, response string) bool {
	return Equivalent(parser.ParseAnswer(key), response)
}

// Equivalent reports whether the raw response matches a parsed key.
// The response is parsed on its own because its shape need not match
// the key's. Unparseable input on either side is never equivalent.
func Equivalent(key value.Value, response string) bool {
	if alts, ok := key.(value.Alternatives); ok {
		return alts.Any(func(v value.Value) bool {
			return Equivalent(v, response)
		})
	}

	resp := parser.Parse(response)
	if value.IsUnparseable(key) || value.IsUnparseable(resp) {
		return false
	}

	// Interval and list responses are not comparable to anything
	candidate, ok := resp.(value.Number)
	if !ok {
		return false
	}

	switch k := key.(type) {
	case value.Number:
		if k.Exact() {
			return k.Equal(candidate)
		}
		return tolerance.CloseEnough(k, candidate.Rat())
	case value.Interval:
		return Covers(k, candidate.Rat())
	default:
		panic(fmt.Sprintf("grading: unexpected key %s (%T)", key.Kind(), key))
	}
}

// CloseEnough applies the fraction tolerance rule to two texts
func CloseEnough(key, response string) bool {
	k, ok := parser.Parse(key).(value.Number)
	if !ok {
		return false
	}
	r, ok := parser.Parse(response).(value.Number)
	if !ok {
		return false
	}
	return tolerance.CloseEnough(k, r.Rat())
}
