// Package gridworld implements a 2D grid navigation environment for
// safe reinforcement learning.
//
// An agent starts in the bottom right corner of a square grid and must
// reach a goal cell somewhere in the top row. Every move costs a fuel
// reward of -1 and reaching the goal is rewarded with 1000. The
// interior rows of the grid are scattered with obstacles. Obstacles do
// not block the agent, but stepping onto one emits a constraint cost
// of 1 on the TimeStep, separately from the reward. With some
// probability the agent's chosen action is replaced by a uniformly
// random one.
//
// Observations are either a one-hot encoding of the agent's position
// or an RGB image of the whole board, flattened in row-major order.
package gridworld

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"github.com/samuelfneumann/gridnav/utils/matutils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GridWorld implements the grid navigation environment. All randomness,
// grid generation as well as action overrides, is drawn from a single
// random stream owned by the GridWorld, so that a fixed seed and a
// fixed sequence of actions always produce the same trajectory.
//
// Actions are discrete and 1-dimensional:
//
//	Action	Meaning
//	  0		Move down
//	  1		Move left
//	  2		Move up
//	  3		Move right
//
// Moves off the edge of the grid leave the agent where it is. Illegal
// actions are rejected with an error wrapping ErrInvalidAction.
//
// GridWorld implements the environment.RowColer interface
type GridWorld struct {
	*Navigate
	environment.Starter

	config   Config
	src      rand.Source
	rng      *rand.Rand
	override distuv.Bernoulli
	seed     uint64

	grid     *Grid
	position Position
	static   []float64 // image of the grid without the player

	currentStep ts.TimeStep
}

// New creates a new GridWorld with configuration c, seeding its random
// stream with seed before the grid is generated. New returns the
// GridWorld and its first TimeStep.
func New(c Config, seed uint64) (*GridWorld, ts.TimeStep, error) {
	g := newGridWorld(seed)
	if err := g.Configure(c); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}
	return g, step, nil
}

// NewFromGrid creates a new GridWorld on a pre-built grid instead of a
// generated one. The GridSize and Rho of c are ignored. The random
// stream is still used for action overrides.
func NewFromGrid(grid *Grid, c Config, seed uint64) (*GridWorld,
	ts.TimeStep, error) {
	c.GridSize = grid.Size()
	c.Rho = 0
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newFromGrid: %w", err)
	}

	g := newGridWorld(seed)
	if err := g.install(grid, c); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newFromGrid: %w", err)
	}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newFromGrid: %w", err)
	}
	return g, step, nil
}

func newGridWorld(seed uint64) *GridWorld {
	src := rand.NewSource(seed)
	return &GridWorld{
		src:  src,
		rng:  rand.New(src),
		seed: seed,
	}
}

// Configure validates c and rebuilds the environment from it: a new
// grid is generated from the current random stream, the agent is moved
// to the start cell and the step counter is cleared. If c is invalid,
// the GridWorld is left untouched and an error wrapping
// ErrInvalidConfiguration is returned.
func (g *GridWorld) Configure(c Config) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	grid, err := GenerateGrid(c.GridSize, c.Rho, g.src)
	if err != nil {
		return fmt.Errorf("configure: could not generate grid: %w", err)
	}

	if err := g.install(grid, c); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	return nil
}

// install sets up the GridWorld to run on grid with configuration c
func (g *GridWorld) install(grid *Grid, c Config) error {
	starter, err := NewSingleStart(grid.Start(), grid.Size())
	if err != nil {
		return err
	}

	g.config = c
	g.grid = grid
	g.Navigate = NewNavigate(grid)
	g.Starter = starter
	g.override = distuv.Bernoulli{P: c.Stochasticity, Src: g.src}

	g.static = nil
	if c.ImageObservation {
		g.staticImage()
	}

	g.position = grid.Start()
	g.currentStep = ts.New(ts.First, 0, c.Discount, g.observe(g.position), 0)

	return nil
}

// Seed reseeds the random stream of the GridWorld and returns the seed
// used. The current grid is kept; call Configure after Seed to
// regenerate the grid from the new stream.
func (g *GridWorld) Seed(seed uint64) uint64 {
	g.src.Seed(seed)
	g.seed = seed
	return g.seed
}

// Reset moves the agent back to the start cell and returns the first
// TimeStep of a new episode. The grid is not regenerated.
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	start, err := decode(g.Start(), g.grid.Size())
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not decode start "+
			"state: %v", err)
	}

	g.position = start
	step := ts.New(ts.First, 0, g.config.Discount, g.observe(start), 0)
	g.currentStep = step

	return step, nil
}

// Step takes one environmental step given a 1-dimensional action in
// {0, 1, 2, 3} and returns the next TimeStep and whether the episode
// has ended.
func (g *GridWorld) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be "+
			"1-dimensional, got %d dimensions: %w", action.Len(),
			ErrInvalidAction)
	}

	a := action.AtVec(0)
	if a != math.Trunc(a) || a < 0 || a >= float64(Actions) {
		return ts.TimeStep{}, false, fmt.Errorf("step: illegal action %v "+
			"∉ (0, 1, 2, 3): %w", a, ErrInvalidAction)
	}

	return g.StepAction(Action(a))
}

// StepAction takes one environmental step given action a. With
// probability Stochasticity, a is first replaced by a uniformly random
// action. The agent then moves if the move keeps it on the grid.
//
// The returned TimeStep has reward 1000 and ends the episode if the
// agent moved onto the goal, otherwise the reward is -1. Its
// ConstraintCost is 1 if the agent is on an obstacle after the move.
func (g *GridWorld) StepAction(a Action) (ts.TimeStep, bool, error) {
	if !a.Valid() {
		return ts.TimeStep{}, false, fmt.Errorf("stepAction: illegal "+
			"action %d ∉ (0, 1, 2, 3): %w", int(a), ErrInvalidAction)
	}

	if g.override.Rand() == 1 {
		a = Action(g.rng.Intn(Actions))
	}

	dRow, dCol := a.Delta()
	if next := g.position.Add(dRow, dCol); next.In(g.grid.Size()) {
		g.position = next
	}

	step := ts.New(ts.Mid, g.reward(g.position), g.config.Discount,
		g.observe(g.position), g.currentStep.Number+1)
	step.ConstraintCost = g.cost(g.position)

	if g.atGoal(g.position) {
		step.StepType = ts.Last
		step.SetEnd(ts.TerminalStateReached)
	}

	g.currentStep = step
	return step, step.Last(), nil
}

// CurrentTimeStep returns the last TimeStep returned by the GridWorld
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// Steps returns the number of steps taken in the current episode
func (g *GridWorld) Steps() int {
	return g.currentStep.Number
}

// Grid returns the grid the agent navigates
func (g *GridWorld) Grid() *Grid {
	return g.grid
}

// Position returns the current position of the agent
func (g *GridWorld) Position() Position {
	return g.position
}

// StartPosition returns the cell every episode starts in
func (g *GridWorld) StartPosition() Position {
	return g.grid.Start()
}

// Config returns the configuration of the GridWorld
func (g *GridWorld) Config() Config {
	return g.config
}

// Rows returns the number of rows in the GridWorld
func (g *GridWorld) Rows() int {
	return g.grid.Size()
}

// Cols returns the number of columns in the GridWorld
func (g *GridWorld) Cols() int {
	return g.grid.Size()
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(Down)})
	upperBound := mat.NewVecDense(1, []float64{float64(Right)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment. One-hot observations have size rows*cols and image
// observations have size rows*cols*3.
func (g *GridWorld) ObservationSpec() environment.Spec {
	size := g.grid.Size() * g.grid.Size()
	cardinality := environment.Discrete
	if g.config.ImageObservation {
		size *= Channels
		cardinality = environment.Continuous
	}

	shape := mat.NewVecDense(size, nil)
	lowerBound := mat.NewVecDense(size, nil)
	upperBound := matutils.VecOnes(size)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, cardinality)
}

// DiscountSpec returns the discounting specification of the environment
func (g *GridWorld) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{g.config.Discount})
	upperBound := mat.NewVecDense(1, []float64{g.config.Discount})

	return environment.NewSpec(shape, environment.Discount, lowerBound,
		upperBound, environment.Continuous)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Goal: %v  |  Bounds: (%d, %d)  |  Seed: %d"

	return fmt.Sprintf(str, g.position, g.grid.Goal(), g.Rows(), g.Cols(),
		g.seed)
}
