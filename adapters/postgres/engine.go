// Package postgres grades answers through SQL functions in PostgreSQL,
// so the database implementation can be checked against the shared
// fixtures.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"gridin/core/conformance"
	"gridin/internal/errors"
	"gridin/internal/logging"
)

const (
	// DefaultEquivalentFunc is the function the setup script defines for equivalence
	DefaultEquivalentFunc = "pg_temp.gridin_equivalent"

	// DefaultMixedFunc is the function the setup script defines for mixed numbers
	DefaultMixedFunc = "pg_temp.gridin_mixed_answer"
)

// identifier is an optionally schema-qualified SQL function name
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Open connects to PostgreSQL. The pool holds a single connection because
// functions created in pg_temp only exist in the session that made them.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.Newf(errors.TypeConfig, "database URL is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Storage("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Storage("ping database", err)
	}
	return db, nil
}

// Install runs the SQL script that defines the grading functions
func Install(ctx context.Context, db *sql.DB, path string) error {
	script, err := os.ReadFile(path)
	if err != nil {
		return errors.Storage("read setup script", err).WithContext("path", path)
	}
	if _, err := db.ExecContext(ctx, string(script)); err != nil {
		return errors.Storage("run setup script", err).WithContext("path", path)
	}
	logging.Info("installed grading functions", zap.String("path", path))
	return nil
}

// Options names the SQL functions to call
type Options struct {
	EquivalentFunc string
	MixedFunc      string
}

// Engine calls the grading functions over a database connection
type Engine struct {
	db             *sql.DB
	equivalentFunc string
	mixedFunc      string
	log            *zap.Logger
}

// NewEngine creates an engine; empty option fields take the defaults
func NewEngine(db *sql.DB, opts Options) (*Engine, error) {
	if opts.EquivalentFunc == "" {
		opts.EquivalentFunc = DefaultEquivalentFunc
	}
	if opts.MixedFunc == "" {
		opts.MixedFunc = DefaultMixedFunc
	}
	for _, name := range []string{opts.EquivalentFunc, opts.MixedFunc} {
		if !identifier.MatchString(name) {
			return nil, errors.Newf(errors.TypeConfig, "invalid SQL function name %q", name)
		}
	}

	return &Engine{
		db:             db,
		equivalentFunc: opts.EquivalentFunc,
		mixedFunc:      opts.MixedFunc,
		log:            logging.Named("postgres"),
	}, nil
}

// Name returns the engine name
func (e *Engine) Name() string { return "postgres" }

// Equivalent calls the equivalence function
func (e *Engine) Equivalent(ctx context.Context, key, response string) (bool, error) {
	return e.call(ctx, e.equivalentFunc, key, response)
}

// MixedAnswer calls the mixed-number function
func (e *Engine) MixedAnswer(ctx context.Context, key, answer string) (bool, error) {
	return e.call(ctx, e.mixedFunc, key, answer)
}

func (e *Engine) call(ctx context.Context, fn, a, b string) (bool, error) {
	query := fmt.Sprintf("SELECT %s($1, $2)", fn)

	var result sql.NullBool
	if err := e.db.QueryRowContext(ctx, query, a, b).Scan(&result); err != nil {
		return false, errors.Storage("call "+fn, err).
			WithContext("args", []string{a, b})
	}
	if !result.Valid {
		return false, errors.Newf(errors.TypeStorage, "%s(%q, %q) returned NULL", fn, a, b)
	}

	e.log.Debug("graded",
		zap.String("func", fn),
		zap.String("a", a),
		zap.String("b", b),
		zap.Bool("result", result.Bool))
	return result.Bool, nil
}

var _ conformance.Engine = (*Engine)(nil)
