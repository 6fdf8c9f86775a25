// Package format handles the shape of grid-in text: padding raw input to
// the grid and checking that a response could have been bubbled in.
package format

import (
	"regexp"
	"strings"
)

// Width is the number of columns in a grid-in
const Width = 4

var (
	// nonGrid matches anything that cannot be bubbled into a grid column
	nonGrid = regexp.MustCompile(`[^\d ./]`)

	// validPattern: no leading zero or slash, no trailing slash
	validPattern = regexp.MustCompile(`\A[1-9. ][0-9./ ]{2}[0-9. ]\z`)
)

// Format squeezes raw text into grid width: only the first alternative
// and the first bound are kept, characters the grid cannot hold are
// dropped, and the result is cut or left-padded to exactly Width.
// Given "[30,40]" it returns "  30".
func Format(raw string) string {
	s := raw
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}

	s = nonGrid.ReplaceAllString(s, "")
	if len(s) > Width {
		s = s[:Width]
	}
	return strings.Repeat(" ", Width-len(s)) + s
}

// Valid reports whether raw is a structurally valid response: exactly
// Width columns, each holding a character the grid allows in that position
func Valid(raw string) bool {
	return validPattern.MatchString(raw)
}
