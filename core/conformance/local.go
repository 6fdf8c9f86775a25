package conformance

import (
	"context"

	"gridin/core/display"
	"gridin/core/format"
	"gridin/core/grading"
)

// LocalEngine grades in process
type LocalEngine struct{}

// NewLocalEngine creates the in-process engine
func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

// Name returns the engine name
func (e *LocalEngine) Name() string { return "local" }

func (e *LocalEngine) Equivalent(_ context.Context, key, response string) (bool, error) {
	return grading.Correct(key, response), nil
}

func (e *LocalEngine) MixedAnswer(_ context.Context, key, answer string) (bool, error) {
	return grading.MixedAnswer(key, answer), nil
}

func (e *LocalEngine) Display(_ context.Context, text string) (string, error) {
	return display.Display(text), nil
}

func (e *LocalEngine) Format(_ context.Context, raw string) (string, error) {
	return format.Format(raw), nil
}

func (e *LocalEngine) Valid(_ context.Context, raw string) (bool, error) {
	return format.Valid(raw), nil
}

var (
	_ Engine     = (*LocalEngine)(nil)
	_ TextEngine = (*LocalEngine)(nil)
)
