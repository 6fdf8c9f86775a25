package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridin/internal/errors"
)

// run executes the root command with fresh flag values
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfgFile, verbose, jsonOutput = "", false, false
	fixturesPath, engineName, databaseURL, setupSQL = "", "local", "", ""
	serverURL, reportFormat, serveAddr = "", "text", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"check", "2/3", ".667"}, "correct\n"},
		{[]string{"check", "2/3", ".67"}, "incorrect\n"},
		{[]string{"check", "[1/3,2/3)", ".667"}, "incorrect\n"},
		{[]string{"mixed", "5/2", "21/2"}, "mixed\n"},
		{[]string{"mixed", "5/2", "2.5"}, "not mixed\n"},
		{[]string{"display", "[1,5);(8,12]"}, "1 ≤ x < 5 or 8 < x ≤ 12\n"},
		{[]string{"format", "1/3;2/3"}, "\" 1/3\"\n"},
		{[]string{"valid", "0.68"}, "invalid\n"},
		{[]string{"valid", "20/3"}, "valid\n"},
		{[]string{"version"}, "gridin version " + Version + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0]+" "+tt.args[len(tt.args)-1], func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCheckCommandWarnsOnUnparseableKey(t *testing.T) {
	out, err := run(t, "check", "....", "....")
	require.NoError(t, err)
	assert.Contains(t, out, "cannot accept any response")
	assert.Contains(t, out, "incorrect")
}

func TestCheckCommandJSON(t *testing.T) {
	out, err := run(t, "--json", "check", "5/2", "21/2")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, false, got["correct"])
	assert.Equal(t, true, got["mixed"])
	assert.Equal(t, "5/2", got["key_display"])
}

func TestCheckCommandArgs(t *testing.T) {
	_, err := run(t, "check", "2/3")
	assert.Error(t, err)
}

func TestConformanceCommand(t *testing.T) {
	fixtures := filepath.Join("..", "..", "..", "testdata", "fixtures")

	out, err := run(t, "conformance", "--fixtures", fixtures)
	require.NoError(t, err, out)
	assert.Contains(t, out, "local:")
	assert.Contains(t, out, "0 mismatched")

	_, err = run(t, "conformance", "--fixtures", fixtures, "--engine", "oracle")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	out, err = run(t, "conformance", "--fixtures", fixtures, "--format", "markdown")
	require.NoError(t, err, out)
	assert.Contains(t, out, "## Conformance: local passed")

	_, err = run(t, "conformance", "--fixtures", fixtures, "--format", "html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = run(t, "conformance", "--fixtures", fixtures, "--engine", "http")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = run(t, "conformance", "--fixtures", filepath.Join(t.TempDir(), "none"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeFixture))
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridin.json")
	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	t.Setenv("GRIDIN_ADDR", ":9999")
	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `":9999"`)
}
