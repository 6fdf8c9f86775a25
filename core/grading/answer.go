package grading

import (
	"gridin/core/display"
	"gridin/core/format"
	"gridin/core/parser"
	"gridin/core/value"
)

// Answer is an answer key as written, together with its parsed value.
// It is immutable and safe to share between goroutines.
type Answer struct {
	text  string
	value value.Value
}

// NewAnswer parses an answer key, splitting ";"-separated alternatives
func NewAnswer(text string) Answer {
	return Answer{text: text, value: parser.ParseAnswer(text)}
}

// Text returns the key as written
func (a Answer) Text() string { return a.text }

// Value returns the parsed key
func (a Answer) Value() value.Value {
	if a.value == nil {
		return value.Unparseable{}
	}
	return a.value
}

// Parseable reports whether the key means anything at all
func (a Answer) Parseable() bool {
	return !value.IsUnparseable(a.value)
}

// Accepts reports whether response is correct for this key
func (a Answer) Accepts(response string) bool {
	return Equivalent(a.value, response)
}

// MixedAnswer reports whether response is a mistyped mixed number
// that would otherwise be correct
func (a Answer) MixedAnswer(response string) bool {
	return MixedAnswer(a.text, response)
}

// Display returns the key as shown to students
func (a Answer) Display() string {
	return display.Display(a.text)
}

// Formatted returns the key padded to grid width
func (a Answer) Formatted() string {
	return format.Format(a.text)
}

// Valid reports whether the key text itself fits the grid
func (a Answer) Valid() bool {
	return format.Valid(a.text)
}

// String returns the key as written
func (a Answer) String() string { return a.text }
