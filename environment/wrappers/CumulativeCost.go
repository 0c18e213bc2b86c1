package wrappers

import (
	"fmt"
	"math"

	env "github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/mat"
)

// CumulativeCost wraps an environment and accumulates the constraint
// costs of each episode. Safe RL algorithms usually constrain this
// cumulative cost to stay below some budget.
//
// The budget is only reported through Violated, CumulativeCost never
// changes rewards or ends episodes. The total is cleared on Reset.
type CumulativeCost struct {
	env.Environment
	budget float64
	total  float64
}

// NewCumulativeCost returns a new CumulativeCost wrapping e. A budget of
// math.Inf(1) is never violated.
func NewCumulativeCost(e env.Environment, budget float64) (*CumulativeCost,
	error) {
	if budget < 0 || math.IsNaN(budget) {
		return nil, fmt.Errorf("newCumulativeCost: budget must be "+
			"non-negative, got %v", budget)
	}

	return &CumulativeCost{Environment: e, budget: budget}, nil
}

// Reset resets the environment and clears the cumulative cost
func (c *CumulativeCost) Reset() (ts.TimeStep, error) {
	step, err := c.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}

	c.total = 0
	return step, nil
}

// Step takes one environmental step and adds its constraint cost to the
// cumulative cost of the episode
func (c *CumulativeCost) Step(action *mat.VecDense) (ts.TimeStep, bool,
	error) {
	step, last, err := c.Environment.Step(action)
	if err != nil {
		return ts.TimeStep{}, true, err
	}

	c.total += step.ConstraintCost
	return step, last, nil
}

// Total returns the cumulative constraint cost of the current episode
func (c *CumulativeCost) Total() float64 {
	return c.total
}

// Budget returns the cost budget
func (c *CumulativeCost) Budget() float64 {
	return c.budget
}

// Violated returns whether the cumulative cost exceeds the budget
func (c *CumulativeCost) Violated() bool {
	return c.total > c.budget
}

// String returns the string representation of the environment
func (c *CumulativeCost) String() string {
	return fmt.Sprintf("CumulativeCost(%v / %v): %v", c.total, c.budget,
		c.Environment)
}
