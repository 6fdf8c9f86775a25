// Package conformance runs shared grading fixtures against any
// implementation of the grader and reports where it disagrees.
package conformance

import (
	"fmt"
)

// CaseKind identifies which operation a case exercises
type CaseKind string

const (
	KindEquivalent CaseKind = "equivalent"
	KindMixed      CaseKind = "mixed"
	KindDisplay    CaseKind = "display"
	KindFormat     CaseKind = "format"
	KindValid      CaseKind = "valid"
)

// Kinds lists every case kind in fixture order
var Kinds = []CaseKind{KindEquivalent, KindMixed, KindDisplay, KindFormat, KindValid}

// Arity is the number of text inputs a case of this kind takes
func (k CaseKind) Arity() int {
	switch k {
	case KindEquivalent, KindMixed:
		return 2
	case KindDisplay, KindFormat, KindValid:
		return 1
	default:
		return 0
	}
}

// ExpectsText reports whether the expected result is a string rather than a bool
func (k CaseKind) ExpectsText() bool {
	return k == KindDisplay || k == KindFormat
}

// Source locates a case in its fixture file
type Source struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

func (s Source) String() string {
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// Case is a single expectation
type Case struct {
	Kind     CaseKind `json:"kind"`
	Group    string   `json:"group"`
	Source   Source   `json:"source"`
	Inputs   []string `json:"inputs"`
	WantBool bool     `json:"want_bool,omitempty"`
	WantText string   `json:"want_text,omitempty"`
}

// Want renders the expected result
func (c Case) Want() string {
	if c.Kind.ExpectsText() {
		return fmt.Sprintf("%q", c.WantText)
	}
	return fmt.Sprintf("%t", c.WantBool)
}

func (c Case) String() string {
	return fmt.Sprintf("%s %q %q", c.Kind, c.Group, c.Inputs)
}

// Suite is an ordered set of cases
type Suite struct {
	Cases []Case `json:"cases"`
}

// Add appends cases to the suite
func (s *Suite) Add(cases ...Case) {
	s.Cases = append(s.Cases, cases...)
}

// Merge appends another suite
func (s *Suite) Merge(other *Suite) {
	if other != nil {
		s.Add(other.Cases...)
	}
}

// Count returns how many cases have the given kind
func (s *Suite) Count(kind CaseKind) int {
	n := 0
	for _, c := range s.Cases {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the cases whose kind is listed
func (s *Suite) Filter(kinds ...CaseKind) *Suite {
	want := make(map[CaseKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	out := &Suite{}
	for _, c := range s.Cases {
		if want[c.Kind] {
			out.Add(c)
		}
	}
	return out
}
