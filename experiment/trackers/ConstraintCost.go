package trackers

import (
	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/floats"
)

// ConstraintCost tracks and saves the cumulative constraint cost of
// each episode in an experiment. The costs of an episode are cleared
// whenever a first TimeStep is tracked.
//
// Note: An episode must finish for this Tracker to save its data.
type ConstraintCost struct {
	costs        []float64
	episodeCosts []float64
	filename     string
}

// NewConstraintCost returns a new ConstraintCost Tracker which will
// save its data at the specified location filename
func NewConstraintCost(filename string) *ConstraintCost {
	return &ConstraintCost{filename: filename}
}

// Track records the constraint cost of t
func (c *ConstraintCost) Track(t ts.TimeStep) {
	if t.First() {
		c.costs = c.costs[:0]
	}
	c.costs = append(c.costs, t.ConstraintCost)

	if t.Last() {
		c.episodeCosts = append(c.episodeCosts, floats.Sum(c.costs))
		c.costs = c.costs[:0]
	}
}

// Data returns the cumulative constraint costs of all finished episodes
func (c *ConstraintCost) Data() []float64 {
	return c.episodeCosts
}

// Save saves the data tracked by the ConstraintCost Tracker to disk
func (c *ConstraintCost) Save() {
	save(c.filename, c.episodeCosts)
}
