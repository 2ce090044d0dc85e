// Package pipeline runs an ordered list of fallible steps over a parameter record.
//
// Each step receives the record produced by the previous step and returns an
// augmented copy or an error. The first error stops the run; later steps are
// never invoked. There are no retries.
package pipeline

import (
	"context"

	"github.com/yigit/sharelearning/internal/pkg/apperrors"
)

// StepFunc is a single fallible stage. P should be a value type so that a
// step cannot mutate the record seen by earlier stages.
type StepFunc[P any] func(ctx context.Context, params P) (P, error)

// Step is a named StepFunc.
type Step[P any] struct {
	Name string
	Run  StepFunc[P]
}

// NewStep creates a named step
func NewStep[P any](name string, fn StepFunc[P]) Step[P] {
	return Step[P]{Name: name, Run: fn}
}

// Result is the tagged outcome of a pipeline run.
type Result[P any] struct {
	// Params holds the record returned by the last successful step.
	Params P
	// FailedStep names the step that failed, empty on success.
	FailedStep string
	// Failure is nil on success.
	Failure *apperrors.CustomError
}

// OK reports whether every step succeeded.
func (r Result[P]) OK() bool {
	return r.Failure == nil
}

// Err returns the failure as an error, or nil on success.
func (r Result[P]) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// Pipeline is an ordered list of steps.
type Pipeline[P any] struct {
	steps []Step[P]
}

// New builds a pipeline from steps, run in the given order
func New[P any](steps ...Step[P]) *Pipeline[P] {
	return &Pipeline[P]{steps: steps}
}

// Then appends a step and returns the pipeline
func (p *Pipeline[P]) Then(name string, fn StepFunc[P]) *Pipeline[P] {
	p.steps = append(p.steps, NewStep(name, fn))
	return p
}

// Steps returns the step names in execution order
func (p *Pipeline[P]) Steps() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name)
	}
	return names
}

// Run executes the steps in order, stopping at the first failure.
// Errors that are not *apperrors.CustomError are reported as KindInternal.
func (p *Pipeline[P]) Run(ctx context.Context, params P) Result[P] {
	for _, step := range p.steps {
		next, err := step.Run(ctx, params)
		if err != nil {
			return Result[P]{
				Params:     params,
				FailedStep: step.Name,
				Failure:    apperrors.AsCustomError(err),
			}
		}
		params = next
	}
	return Result[P]{Params: params}
}
