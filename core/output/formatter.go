// Package output renders conformance reports.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gridin/core/conformance"
)

// Format represents output format type
type Format string

const (
	// FormatText is one line per mismatch and a summary
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report for PR comments
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *conformance.Report) error
}

var formatters = map[Format]Formatter{
	FormatText:     textFormatter{},
	FormatJSON:     jsonFormatter{},
	FormatMarkdown: markdownFormatter{},
}

// Get returns the formatter for a format name
func Get(format Format) (Formatter, bool) {
	f, ok := formatters[format]
	return f, ok
}

// Formats lists the registered format names
func Formats() []string {
	names := make([]string, 0, len(formatters))
	for f := range formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

type textFormatter struct{}

func (textFormatter) Format() Format { return FormatText }

func (textFormatter) Render(w io.Writer, report *conformance.Report) error {
	for _, m := range report.Mismatches {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, report)
	return err
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, report *conformance.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type markdownFormatter struct{}

func (markdownFormatter) Format() Format { return FormatMarkdown }

func (markdownFormatter) Render(w io.Writer, report *conformance.Report) error {
	var b strings.Builder

	status := "passed"
	if !report.Passed() {
		status = "failed"
	}
	fmt.Fprintf(&b, "## Conformance: %s %s\n\n", report.Engine, status)
	fmt.Fprintf(&b, "| Cases | Matched | Skipped | Mismatched |\n")
	fmt.Fprintf(&b, "|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d |\n", report.Total, report.Matched, report.Skipped, len(report.Mismatches))

	if len(report.Mismatches) > 0 {
		b.WriteString("\n| Source | Kind | Inputs | Want | Got |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, m := range report.Mismatches {
			got := m.Got
			if m.Error != "" {
				got = "error: " + m.Error
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
				m.Case.Source, m.Case.Kind, cell(fmt.Sprintf("%q", m.Case.Inputs)), cell(m.Case.Want()), cell(got))
		}
	}

	fmt.Fprintf(&b, "\nRun `%s`\n", report.RunID)
	_, err := io.WriteString(w, b.String())
	return err
}

// cell escapes text for a markdown table cell
func cell(s string) string {
	return "`" + strings.NewReplacer("|", `\|`, "`", "'", "\n", " ").Replace(s) + "`"
}
