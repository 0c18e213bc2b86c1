// Package environment outlines the interfaces and sturcts needed to implement
// concrete environments
package environment

import (
	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes end. End adjusts the argument TimeStep
// to be the last in the episode when the episode should end and returns
// whether or not the episode ended.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	Ender

	// GetReward returns the reward for taking action in state and
	// transitioning to nextState
	GetReward(state, action, nextState *mat.VecDense) float64
	AtGoal(state *mat.VecDense) bool
	RewardSpec() Spec

	// Min and Max return the bounds on rewards in the Task
	Min() float64
	Max() float64
}

// Environment implements a simualted environment, which includes a Task to
// complete
type Environment interface {
	Task
	Reset() (ts.TimeStep, error)
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)
	CurrentTimeStep() ts.TimeStep
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// RowColer is an Environment laid out on a grid of rows and columns
type RowColer interface {
	Environment
	Rows() int
	Cols() int
}
