// Package wrappers implements wrappers around environments
package wrappers

import (
	"fmt"

	env "github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/mat"
)

// DefaultEpisodeCutoff is the episode length usually used to truncate
// grid navigation episodes
const DefaultEpisodeCutoff int = 200

// TimeLimit wraps an environment and ends episodes after a fixed number
// of steps. Episodes cut off by the TimeLimit end with end type
// timestep.Timeout. Episodes which the wrapped environment ends on its
// own keep their end type.
//
// TimeLimit itself implements the environment.Environment interface.
type TimeLimit struct {
	env.Environment
	limit *env.StepLimit

	currentTimeStep ts.TimeStep
}

// NewTimeLimit returns a new TimeLimit wrapping e which ends episodes
// after cutoff steps
func NewTimeLimit(e env.Environment, cutoff int) (*TimeLimit, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("newTimeLimit: cutoff must be positive, "+
			"got %d", cutoff)
	}

	return &TimeLimit{
		Environment:     e,
		limit:           env.NewStepLimit(cutoff),
		currentTimeStep: e.CurrentTimeStep(),
	}, nil
}

// Reset resets the environment to some starting state
func (t *TimeLimit) Reset() (ts.TimeStep, error) {
	step, err := t.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}

	t.currentTimeStep = step
	return step, nil
}

// Step takes one environmental step given some action
func (t *TimeLimit) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	step, _, err := t.Environment.Step(action)
	if err != nil {
		return ts.TimeStep{}, true, err
	}

	t.End(&step)
	t.currentTimeStep = step

	return step, step.Last(), nil
}

// End ends the episode if either the wrapped environment or the step
// limit ends it
func (t *TimeLimit) End(step *ts.TimeStep) bool {
	if step.Last() {
		return true
	}
	if end := t.Environment.End(step); end {
		return true
	}
	return t.limit.End(step)
}

// Cutoff returns the number of steps after which episodes are ended
func (t *TimeLimit) Cutoff() int {
	return t.limit.Steps()
}

// CurrentTimeStep returns the current time step in the environment
func (t *TimeLimit) CurrentTimeStep() ts.TimeStep {
	return t.currentTimeStep
}

// String returns the string representation of the environment
func (t *TimeLimit) String() string {
	return fmt.Sprintf("TimeLimit(%d): %v", t.Cutoff(), t.Environment)
}
