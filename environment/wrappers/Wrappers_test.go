package wrappers_test

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/gridnav/environment/gridworld"
	"github.com/samuelfneumann/gridnav/environment/wrappers"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/mat"
)

// newGridWorld returns a deterministic GridWorld on the grid drawn by
// art
func newGridWorld(t *testing.T, art []string) *gridworld.GridWorld {
	t.Helper()

	grid, err := gridworld.ParseGrid(art)
	if err != nil {
		t.Fatalf("parseGrid: %v", err)
	}

	c := gridworld.DefaultConfig()
	c.Stochasticity = 0
	g, _, err := gridworld.NewFromGrid(grid, c, gridworld.DefaultSeed)
	if err != nil {
		t.Fatalf("newFromGrid: %v", err)
	}
	return g
}

func action(a gridworld.Action) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(a)})
}

func TestTimeLimit(t *testing.T) {
	g := newGridWorld(t, []string{
		"G...",
		"....",
		"....",
		"...P",
	})

	cutoff := 5
	env, err := wrappers.NewTimeLimit(g, cutoff)
	if err != nil {
		t.Fatalf("newTimeLimit: %v", err)
	}

	for episode := 0; episode < 2; episode++ {
		if _, err := env.Reset(); err != nil {
			t.Fatalf("reset: %v", err)
		}

		// Bumping into the bottom boundary never reaches the goal
		done := false
		i := 0
		var step ts.TimeStep
		for !done {
			step, done, err = env.Step(action(gridworld.Down))
			if err != nil {
				t.Fatalf("step: %v", err)
			}
			i++
		}

		if i != cutoff {
			t.Errorf("step: expected done == true when i == %v, got i == %v",
				cutoff, i)
		}
		if step.EndType() != ts.Timeout {
			t.Errorf("step: expected end type %v, got %v", ts.Timeout,
				step.EndType())
		}
		if cur := env.CurrentTimeStep(); !cur.Last() {
			t.Error("currentTimeStep: expected last timestep")
		}
	}
}

func TestTimeLimitKeepsGoalEnding(t *testing.T) {
	g := newGridWorld(t, []string{
		"..G",
		"...",
		"..P",
	})

	env, err := wrappers.NewTimeLimit(g, 2)
	if err != nil {
		t.Fatalf("newTimeLimit: %v", err)
	}

	env.Step(action(gridworld.Up))
	step, done, err := env.Step(action(gridworld.Up))
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !done || step.EndType() != ts.TerminalStateReached {
		t.Errorf("step: expected goal ending, got %v (%v)", step.EndType(),
			done)
	}
}

func TestTimeLimitErrors(t *testing.T) {
	g := newGridWorld(t, []string{"G.", ".P"})

	if _, err := wrappers.NewTimeLimit(g, 0); err == nil {
		t.Error("newTimeLimit: expected error for cutoff 0")
	}

	env, err := wrappers.NewTimeLimit(g, wrappers.DefaultEpisodeCutoff)
	if err != nil {
		t.Fatalf("newTimeLimit: %v", err)
	}
	if _, _, err := env.Step(action(9)); !errors.Is(err,
		gridworld.ErrInvalidAction) {
		t.Errorf("step: expected %v, got %v", gridworld.ErrInvalidAction, err)
	}
}

func TestCumulativeCost(t *testing.T) {
	g := newGridWorld(t, []string{
		"G...",
		"..##",
		"....",
		"...P",
	})

	env, err := wrappers.NewCumulativeCost(g, 1)
	if err != nil {
		t.Fatalf("newCumulativeCost: %v", err)
	}

	// (3, 3) -> (2, 3) -> (1, 3) obstacle -> (1, 2) obstacle -> (2, 2)
	for _, a := range []gridworld.Action{gridworld.Up, gridworld.Up,
		gridworld.Left, gridworld.Down} {
		if _, _, err := env.Step(action(a)); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	if env.Total() != 2 {
		t.Errorf("total: expected 2, got %v", env.Total())
	}
	if !env.Violated() {
		t.Errorf("violated: total %v should exceed budget %v", env.Total(),
			env.Budget())
	}

	if _, err := env.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if env.Total() != 0 || env.Violated() {
		t.Errorf("reset: expected cleared total, got %v", env.Total())
	}

	if _, err := wrappers.NewCumulativeCost(g, -1); err == nil {
		t.Error("newCumulativeCost: expected error for negative budget")
	}
	if _, err := wrappers.NewCumulativeCost(g, math.Inf(1)); err != nil {
		t.Errorf("newCumulativeCost: %v", err)
	}
}

func TestXY(t *testing.T) {
	g := newGridWorld(t, []string{
		"G...",
		"....",
		"....",
		"...P",
	})

	xy, err := wrappers.NewXY(g)
	if err != nil {
		t.Fatalf("newXY: %v", err)
	}

	step, err := xy.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if x, y := step.Observation.AtVec(0), step.Observation.AtVec(1); x != 3 ||
		y != 3 {
		t.Errorf("reset: expected (x, y) = (3, 3), got (%v, %v)", x, y)
	}

	step, _, err = xy.Step(action(gridworld.Up))
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if x, y := step.Observation.AtVec(0), step.Observation.AtVec(1); x != 3 ||
		y != 2 {
		t.Errorf("step: expected (x, y) = (3, 2), got (%v, %v)", x, y)
	}

	step, _, err = xy.Step(action(gridworld.Left))
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if x, y := step.Observation.AtVec(0), step.Observation.AtVec(1); x != 2 ||
		y != 2 {
		t.Errorf("step: expected (x, y) = (2, 2), got (%v, %v)", x, y)
	}

	if l := xy.ObservationSpec().Shape.Len(); l != 2 {
		t.Errorf("observationSpec: expected length 2, got %d", l)
	}
}

func TestXYRejectsImages(t *testing.T) {
	c := gridworld.DefaultConfig()
	c.GridSize = 4
	c.ImageObservation = true

	g, _, err := gridworld.New(c, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := wrappers.NewXY(g); err == nil {
		t.Error("newXY: expected error for image observations")
	}
}
