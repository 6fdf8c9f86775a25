// Package cmd - conformance command
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"gridin/adapters/fixtures"
	httpengine "gridin/adapters/http"
	"gridin/adapters/postgres"
	"gridin/core/conformance"
	"gridin/core/output"
	"gridin/internal/config"
	"gridin/internal/errors"
)

var (
	fixturesPath string
	engineName   string
	databaseURL  string
	setupSQL     string
	serverURL    string
	reportFormat string
)

// conformanceCmd runs the shared fixtures against an engine
var conformanceCmd = &cobra.Command{
	Use:   "conformance",
	Short: "Run the shared grading fixtures against an implementation",
	Long: `Run the shared grading fixtures against an implementation.

The local engine is this program. The http engine calls a running
gridin server. The postgres engine calls SQL functions defined by a setup
script, so a database implementation of the grader can be held to the
same cases.

Examples:
  gridin conformance
  gridin conformance --engine http --url http://localhost:8080 --format markdown
  gridin conformance --engine postgres --dsn postgres://localhost/sat --setup-sql grid_in.sql`,
	Args: cobra.NoArgs,
	RunE: runConformance,
}

func init() {
	conformanceCmd.Flags().StringVar(&fixturesPath, "fixtures", "", "fixture file or directory (default from config)")
	conformanceCmd.Flags().StringVarP(&engineName, "engine", "e", "local", "engine to test (local, http, postgres)")
	conformanceCmd.Flags().StringVar(&serverURL, "url", "", "base URL of a gridin server for the http engine")
	conformanceCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "report format (text, json, markdown)")
	conformanceCmd.Flags().StringVar(&databaseURL, "dsn", "", "PostgreSQL connection string (default from config)")
	conformanceCmd.Flags().StringVar(&setupSQL, "setup-sql", "", "SQL script defining the grading functions")

	rootCmd.AddCommand(conformanceCmd)
}

func runConformance(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	if jsonOutput {
		reportFormat = string(output.FormatJSON)
	}
	formatter, ok := output.Get(output.Format(reportFormat))
	if !ok {
		return errors.Newf(errors.TypeInput, "unknown report format %q (want one of %v)", reportFormat, output.Formats())
	}

	path := firstNonEmpty(fixturesPath, cfg.Fixtures.Dir)
	suite, err := fixtures.Load(path)
	if err != nil {
		return err
	}

	engine, closeEngine, err := openEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeEngine()

	report, err := conformance.Run(ctx, engine, suite)
	if err != nil {
		return err
	}

	if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if !report.Passed() {
		return errors.Newf(errors.TypeConformance, "%d of %d cases mismatched", len(report.Mismatches), report.Total)
	}
	return nil
}

func openEngine(ctx context.Context, cfg *config.Config) (conformance.Engine, func(), error) {
	switch engineName {
	case "local":
		return conformance.NewLocalEngine(), func() {}, nil
	case "http":
		if serverURL == "" {
			return nil, nil, errors.Input("--url is required for the http engine")
		}
		engine, err := httpengine.New(serverURL, nil)
		if err != nil {
			return nil, nil, err
		}
		return engine, func() {}, nil
	case "postgres":
		db, err := postgres.Open(ctx, firstNonEmpty(databaseURL, cfg.Parity.DatabaseURL))
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() { _ = db.Close() }

		if script := firstNonEmpty(setupSQL, cfg.Parity.SetupSQL); script != "" {
			if err := postgres.Install(ctx, db, script); err != nil {
				closeDB()
				return nil, nil, err
			}
		}

		engine, err := postgres.NewEngine(db, postgres.Options{
			EquivalentFunc: cfg.Parity.EquivalentFunc,
			MixedFunc:      cfg.Parity.MixedFunc,
		})
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		return engine, closeDB, nil
	default:
		return nil, nil, errors.Newf(errors.TypeInput, "unknown engine %q (want local, http or postgres)", engineName)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
