// Package random implements agents which act uniformly at random
package random

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridnav/agent"
	"github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config implements a configuration of a Uniform agent
type Config struct{}

// CreateAgent creates a Uniform agent acting in env
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return NewUniform(env.ActionSpec(), seed)
}

// Validate always returns nil, a Uniform agent has no hyperparameters
func (c Config) Validate() error {
	return nil
}

// Uniform selects each discrete action with equal probability. Each
// dimension of the action is sampled independently between the lower
// and upper bounds of the action specification, inclusive.
//
// Uniform never learns, all Learner methods are no-ops.
type Uniform struct {
	lower []float64
	dists []distuv.Categorical
	eval  bool
}

// NewUniform returns a new Uniform agent over the discrete actions
// described by spec
func NewUniform(spec environment.Spec, seed uint64) (*Uniform, error) {
	if spec.Type != environment.Action {
		return nil, fmt.Errorf("newUniform: expected %v spec, got %v",
			environment.Action, spec.Type)
	}
	if spec.Cardinality != environment.Discrete {
		return nil, fmt.Errorf("newUniform: actions must be discrete, "+
			"got %v", spec.Cardinality)
	}

	src := rand.NewSource(seed)
	lower := make([]float64, spec.LowerBound.Len())
	dists := make([]distuv.Categorical, spec.LowerBound.Len())

	for i := range dists {
		low, high := spec.LowerBound.AtVec(i), spec.UpperBound.AtVec(i)
		if low != math.Trunc(low) || high != math.Trunc(high) || high < low {
			return nil, fmt.Errorf("newUniform: illegal action bounds "+
				"[%v, %v] in dimension %d", low, high, i)
		}

		weights := make([]float64, int(high-low)+1)
		for j := range weights {
			weights[j] = 1.0
		}
		lower[i] = low
		dists[i] = distuv.NewCategorical(weights, src)
	}

	return &Uniform{lower: lower, dists: dists}, nil
}

// SelectAction selects an action uniformly at random, ignoring t
func (u *Uniform) SelectAction(t ts.TimeStep) *mat.VecDense {
	action := make([]float64, len(u.dists))
	for i := range u.dists {
		action[i] = u.lower[i] + u.dists[i].Rand()
	}
	return mat.NewVecDense(len(action), action)
}

// Eval sets the agent to evaluation mode
func (u *Uniform) Eval() { u.eval = true }

// Train sets the agent to training mode
func (u *Uniform) Train() { u.eval = false }

// IsEval returns whether the agent is in evaluation mode
func (u *Uniform) IsEval() bool { return u.eval }

// Step is a no-op, Uniform never learns
func (u *Uniform) Step() error { return nil }

// Observe is a no-op
func (u *Uniform) Observe(mat.Vector, ts.TimeStep) error { return nil }

// ObserveFirst is a no-op
func (u *Uniform) ObserveFirst(ts.TimeStep) error { return nil }

// EndEpisode is a no-op
func (u *Uniform) EndEpisode() {}
