package gridworld

import (
	"github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	TimeStepReward float64 = -1.0
	GoalReward     float64 = 1000.0

	// ObstacleCost is the constraint cost of stepping onto an obstacle
	ObstacleCost float64 = 1.0
)

// Navigate is the task of reaching the goal cell of a Grid. Every
// transition costs a fuel reward of -1 except the one which reaches
// the goal, which is rewarded with 1000 and ends the episode.
// Transitions onto an obstacle carry a constraint cost of 1.
//
// Navigate has no step limit. Episodes are only ended by reaching the
// goal; use wrappers.TimeLimit to truncate them.
type Navigate struct {
	grid *Grid
}

// NewNavigate returns a new Navigate task on grid g
func NewNavigate(g *Grid) *Navigate {
	return &Navigate{g}
}

// reward returns the reward for a transition into p
func (n *Navigate) reward(p Position) float64 {
	if n.atGoal(p) {
		return GoalReward
	}
	return TimeStepReward
}

// cost returns the constraint cost for a transition into p. Reaching
// the goal never carries a cost.
func (n *Navigate) cost(p Position) float64 {
	if n.atGoal(p) {
		return 0
	}
	if n.grid.At(p) == Obstacle {
		return ObstacleCost
	}
	return 0
}

func (n *Navigate) atGoal(p Position) bool {
	return p == n.grid.goal
}

// GetReward returns the reward for transitioning from state to
// nextState. States may be in either observation encoding.
func (n *Navigate) GetReward(_, _, nextState *mat.VecDense) float64 {
	p, err := decode(nextState, n.grid.size)
	if err != nil {
		panic("getReward: " + err.Error())
	}
	return n.reward(p)
}

// ConstraintCost returns the constraint cost of transitioning into
// nextState
func (n *Navigate) ConstraintCost(nextState *mat.VecDense) float64 {
	p, err := decode(nextState, n.grid.size)
	if err != nil {
		panic("constraintCost: " + err.Error())
	}
	return n.cost(p)
}

// AtGoal returns whether state is the goal state
func (n *Navigate) AtGoal(state *mat.VecDense) bool {
	p, err := decode(state, n.grid.size)
	if err != nil {
		return false
	}
	return n.atGoal(p)
}

// End ends the episode if the TimeStep's observation is the goal state.
// If so, the TimeStep becomes the last in the episode with end type
// timestep.TerminalStateReached.
func (n *Navigate) End(t *ts.TimeStep) bool {
	if n.AtGoal(t.Observation) {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return false
}

// Min returns the minimum reward attainable in the Task
func (n *Navigate) Min() float64 {
	return floats.Min([]float64{TimeStepReward, GoalReward})
}

// Max returns the maximum reward attainable in the Task
func (n *Navigate) Max() float64 {
	return floats.Max([]float64{TimeStepReward, GoalReward})
}

// RewardSpec returns the reward specification of the Task
func (n *Navigate) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{n.Min()})
	upperBound := mat.NewVecDense(1, []float64{n.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Discrete)
}
