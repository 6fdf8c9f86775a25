package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridin/core/conformance"
	"gridin/internal/errors"
)

const sample = `
equivalent "fractions" {
  cases = [
    ["10/3", "3.33", true],
    ["10/3", "3.32", false],
  ]
}

format "padding" {
  cases = [
    [null, "    "],
  ]
}

valid "leading zero" {
  cases = [["0.68", false]]
}
`

func TestParse(t *testing.T) {
	suite, err := NewLoader().Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, suite.Cases, 4)

	first := suite.Cases[0]
	assert.Equal(t, conformance.KindEquivalent, first.Kind)
	assert.Equal(t, "fractions", first.Group)
	assert.Equal(t, []string{"10/3", "3.33"}, first.Inputs)
	assert.True(t, first.WantBool)
	assert.Equal(t, conformance.Source{File: "sample.hcl", Line: 4}, first.Source)

	assert.False(t, suite.Cases[1].WantBool)

	format := suite.Cases[2]
	assert.Equal(t, conformance.KindFormat, format.Kind)
	assert.Equal(t, []string{""}, format.Inputs)
	assert.Equal(t, "    ", format.WantText)

	assert.Equal(t, 1, suite.Count(conformance.KindValid))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `equivalent "x" {`},
		{"unknown block", `grade "x" { cases = [] }`},
		{"missing label", `equivalent { cases = [] }`},
		{"missing cases", `equivalent "x" {}`},
		{"cases not a list", `equivalent "x" { cases = "1/2" }`},
		{"row not a list", `equivalent "x" { cases = ["1/2"] }`},
		{"too few values", `equivalent "x" { cases = [["1/2", true]] }`},
		{"number input", `valid "x" { cases = [[1234, true]] }`},
		{"string where bool expected", `valid "x" { cases = [["1234", "yes"]] }`},
		{"bool where text expected", `display "x" { cases = [["1/2", true]] }`},
		{"variables", `mixed "x" { cases = [[key, "21/2", true]] }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeFixture), "got %v", err)
			assert.Contains(t, err.Error(), "bad.hcl")
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
	}
	write("b.hcl", `mixed "b" { cases = [["5/2", "21/2", true]] }`)
	write("a.hcl", `display "a" { cases = [["2/3;5/6", "2/3 or 5/6"]] }`)
	write("notes.txt", "ignored")

	suite, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, suite.Cases, 2)
	assert.Equal(t, conformance.KindDisplay, suite.Cases[0].Kind)
	assert.Equal(t, conformance.KindMixed, suite.Cases[1].Kind)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeFixture))

	_, err = Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeFixture))
}

func TestSharedFixturesLoad(t *testing.T) {
	suite, err := Load(filepath.Join("..", "..", "testdata", "fixtures"))
	require.NoError(t, err)

	for _, kind := range conformance.Kinds {
		assert.NotZero(t, suite.Count(kind), "no %s cases", kind)
	}
}
