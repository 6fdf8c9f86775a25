package conformance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridin/internal/errors"
	"gridin/internal/logging"
)

// Engine is an implementation of the grader under test
type Engine interface {
	// Name identifies the engine in reports
	Name() string

	// Equivalent reports whether response is correct for key
	Equivalent(ctx context.Context, key, response string) (bool, error)

	// MixedAnswer reports whether answer is a mistyped mixed number
	MixedAnswer(ctx context.Context, key, answer string) (bool, error)
}

// TextEngine is implemented by engines that also render and format text.
// Display, format and valid cases are skipped for engines without it.
type TextEngine interface {
	Display(ctx context.Context, text string) (string, error)
	Format(ctx context.Context, raw string) (string, error)
	Valid(ctx context.Context, raw string) (bool, error)
}

// Mismatch is a case the engine got wrong or could not evaluate
type Mismatch struct {
	Case  Case   `json:"case"`
	Got   string `json:"got,omitempty"`
	Error string `json:"error,omitempty"`
}

func (m Mismatch) String() string {
	if m.Error != "" {
		return fmt.Sprintf("%s: %s: error: %s", m.Case.Source, m.Case, m.Error)
	}
	return fmt.Sprintf("%s: %s: got %s, want %s", m.Case.Source, m.Case, m.Got, m.Case.Want())
}

// Report summarizes a run
type Report struct {
	RunID      string        `json:"run_id"`
	Engine     string        `json:"engine"`
	Total      int           `json:"total"`
	Matched    int           `json:"matched"`
	Skipped    int           `json:"skipped"`
	Mismatches []Mismatch    `json:"mismatches,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
}

// Passed reports whether every evaluated case matched
func (r *Report) Passed() bool {
	return len(r.Mismatches) == 0
}

func (r *Report) String() string {
	return fmt.Sprintf("%s: %d/%d matched, %d skipped, %d mismatched (%s)",
		r.Engine, r.Matched, r.Total-r.Skipped, r.Skipped, len(r.Mismatches), r.Duration.Round(time.Millisecond))
}

var errSkipped = errors.NotSupported("text cases")

// Run evaluates every case in the suite against engine, one at a time.
// Engine errors are recorded as mismatches; only cancellation stops the run.
func Run(ctx context.Context, engine Engine, suite *Suite) (*Report, error) {
	report := &Report{
		RunID:     uuid.New().String(),
		Engine:    engine.Name(),
		StartedAt: time.Now(),
	}
	log := logging.Named("conformance").With(
		zap.String("run_id", report.RunID),
		zap.String("engine", report.Engine),
	)
	log.Info("starting run", zap.Int("cases", len(suite.Cases)))

	textEngine, _ := engine.(TextEngine)

	for _, c := range suite.Cases {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(report.StartedAt)
			return report, errors.Wrap(errors.TypeConformance, "run cancelled", err)
		}
		report.Total++

		got, err := evaluate(ctx, engine, textEngine, c)
		switch {
		case err == errSkipped:
			report.Skipped++
		case err != nil:
			log.Warn("engine error",
				zap.String("source", c.Source.String()),
				zap.Strings("inputs", c.Inputs),
				zap.Error(err))
			report.Mismatches = append(report.Mismatches, Mismatch{Case: c, Error: err.Error()})
		case got != c.Want():
			log.Debug("mismatch",
				zap.String("source", c.Source.String()),
				zap.Strings("inputs", c.Inputs),
				zap.String("got", got),
				zap.String("want", c.Want()))
			report.Mismatches = append(report.Mismatches, Mismatch{Case: c, Got: got})
		default:
			report.Matched++
		}
	}

	report.Duration = time.Since(report.StartedAt)
	log.Info("run complete",
		zap.Int("matched", report.Matched),
		zap.Int("skipped", report.Skipped),
		zap.Int("mismatched", len(report.Mismatches)),
		zap.Duration("duration", report.Duration))
	return report, nil
}

// evaluate returns the engine's result rendered the way Case.Want renders
func evaluate(ctx context.Context, engine Engine, text TextEngine, c Case) (string, error) {
	if len(c.Inputs) != c.Kind.Arity() {
		return "", errors.Newf(errors.TypeFixture, "%s case takes %d inputs, got %d", c.Kind, c.Kind.Arity(), len(c.Inputs))
	}

	switch c.Kind {
	case KindEquivalent:
		ok, err := engine.Equivalent(ctx, c.Inputs[0], c.Inputs[1])
		return fmt.Sprintf("%t", ok), err
	case KindMixed:
		ok, err := engine.MixedAnswer(ctx, c.Inputs[0], c.Inputs[1])
		return fmt.Sprintf("%t", ok), err
	}

	if text == nil {
		return "", errSkipped
	}

	switch c.Kind {
	case KindDisplay:
		s, err := text.Display(ctx, c.Inputs[0])
		return fmt.Sprintf("%q", s), err
	case KindFormat:
		s, err := text.Format(ctx, c.Inputs[0])
		return fmt.Sprintf("%q", s), err
	case KindValid:
		ok, err := text.Valid(ctx, c.Inputs[0])
		return fmt.Sprintf("%t", ok), err
	default:
		return "", errors.Newf(errors.TypeFixture, "unknown case kind %q", c.Kind)
	}
}
