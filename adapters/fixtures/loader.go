// Package fixtures loads shared grading fixtures written in HCL.
//
// A fixture file holds labelled blocks, one per group of cases:
//
//	equivalent "fractions" {
//	  cases = [
//	    ["10/3", "3.33", true],
//	  ]
//	}
//
// The block type names the operation (equivalent, mixed, display, format,
// valid). Each row lists the text inputs followed by the expected result.
// A null input stands for missing text and is read as "".
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"gridin/core/conformance"
	"gridin/internal/errors"
	"gridin/internal/logging"
)

// Extension is the fixture file suffix
const Extension = ".hcl"

var fileSchema = func() *hcl.BodySchema {
	schema := &hcl.BodySchema{}
	for _, kind := range conformance.Kinds {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{
			Type:       string(kind),
			LabelNames: []string{"name"},
		})
	}
	return schema
}()

var groupSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "cases", Required: true},
	},
}

// Loader parses fixture files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new fixture loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// Load reads a fixture file, or every fixture file in a directory in
// name order
func Load(path string) (*conformance.Suite, error) {
	return NewLoader().Load(path)
}

// Load reads a fixture file or directory
func (l *Loader) Load(path string) (*conformance.Suite, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Fixture("cannot open fixtures", err).WithContext("path", path)
	}
	if info.IsDir() {
		return l.LoadDir(path)
	}
	return l.LoadFile(path)
}

// LoadDir reads every *.hcl file directly inside dir
func (l *Loader) LoadDir(dir string) (*conformance.Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Fixture("cannot read fixture directory", err).WithContext("path", dir)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), Extension) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		return nil, errors.Newf(errors.TypeFixture, "no %s files in %s", Extension, dir)
	}
	sort.Strings(files)

	suite := &conformance.Suite{}
	for _, file := range files {
		s, err := l.LoadFile(file)
		if err != nil {
			return nil, err
		}
		suite.Merge(s)
	}
	return suite, nil
}

// LoadFile reads a single fixture file
func (l *Loader) LoadFile(file string) (*conformance.Suite, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Fixture("cannot read fixture file", err).WithContext("path", file)
	}
	return l.Parse(src, file)
}

// Parse decodes fixture source; filename is used in error positions
func (l *Loader) Parse(src []byte, filename string) (*conformance.Suite, error) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	content, diags := hclFile.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	suite := &conformance.Suite{}
	for _, block := range content.Blocks {
		cases, err := decodeGroup(block)
		if err != nil {
			return nil, err
		}
		suite.Add(cases...)
	}

	logging.Debug("loaded fixtures",
		zap.String("file", filename),
		zap.Int("cases", len(suite.Cases)))
	return suite, nil
}

func decodeGroup(block *hcl.Block) ([]conformance.Case, error) {
	kind := conformance.CaseKind(block.Type)
	group := block.Labels[0]

	content, diags := block.Body.Content(groupSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	rows, diags := hcl.ExprList(content.Attributes["cases"].Expr)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	cases := make([]conformance.Case, 0, len(rows))
	for _, row := range rows {
		rng := row.Range()
		val, diags := row.Value(nil)
		if diags.HasErrors() {
			return nil, diagError(diags)
		}

		c, err := decodeRow(kind, val)
		if err != nil {
			return nil, errors.Fixture(fmt.Sprintf("%s:%d: %s %q", rng.Filename, rng.Start.Line, kind, group), err).
				WithContext("file", rng.Filename).
				WithContext("line", rng.Start.Line)
		}
		c.Group = group
		c.Source = conformance.Source{File: rng.Filename, Line: rng.Start.Line}
		cases = append(cases, c)
	}
	return cases, nil
}

func decodeRow(kind conformance.CaseKind, val cty.Value) (conformance.Case, error) {
	c := conformance.Case{Kind: kind}

	if !val.Type().IsTupleType() {
		return c, fmt.Errorf("case must be a list, got %s", val.Type().FriendlyName())
	}
	items := val.AsValueSlice()
	arity := kind.Arity()
	if len(items) != arity+1 {
		return c, fmt.Errorf("case needs %d inputs and an expected result, got %d values", arity, len(items))
	}

	for i, item := range items[:arity] {
		s, err := text(item)
		if err != nil {
			return c, fmt.Errorf("input %d: %w", i+1, err)
		}
		c.Inputs = append(c.Inputs, s)
	}

	want := items[arity]
	if kind.ExpectsText() {
		s, err := text(want)
		if err != nil {
			return c, fmt.Errorf("expected result: %w", err)
		}
		c.WantText = s
		return c, nil
	}

	if want.IsNull() || want.Type() != cty.Bool {
		return c, fmt.Errorf("expected result must be true or false")
	}
	c.WantBool = want.True()
	return c, nil
}

// text reads a string value; null is the empty string
func text(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	if v.Type() != cty.String {
		return "", fmt.Errorf("must be a string, got %s", v.Type().FriendlyName())
	}
	return v.AsString(), nil
}

func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		err := errors.Newf(errors.TypeFixture, "%s: %s", diag.Summary, diag.Detail)
		if diag.Subject != nil {
			err = errors.Newf(errors.TypeFixture, "%s:%d: %s: %s",
				diag.Subject.Filename, diag.Subject.Start.Line, diag.Summary, diag.Detail)
			err.WithContext("file", diag.Subject.Filename).WithContext("line", diag.Subject.Start.Line)
		}
		return err
	}
	return errors.Wrap(errors.TypeFixture, "invalid fixture", diags)
}
