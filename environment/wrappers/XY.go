package wrappers

import (
	"fmt"

	env "github.com/samuelfneumann/gridnav/environment"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"github.com/samuelfneumann/gridnav/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// XY converts one-hot state encodings of environment.RowColer's
// to the corresponding (x, y) == (col, row) coordinates.
type XY struct {
	env.RowColer

	currentTimeStep ts.TimeStep
}

// NewXY returns a new XY environment wrapper. The wrapped environment
// must use one-hot observations.
func NewXY(e env.RowColer) (*XY, error) {
	if l := e.ObservationSpec().Shape.Len(); l != e.Rows()*e.Cols() {
		return nil, fmt.Errorf("newXY: observations of length %d are not "+
			"one-hot encodings of a %dx%d grid", l, e.Rows(), e.Cols())
	}

	xy := &XY{RowColer: e}
	step := e.CurrentTimeStep()
	if step.Observation != nil {
		obs, err := xy.getObs(step.Observation)
		if err != nil {
			return nil, fmt.Errorf("newXY: %v", err)
		}
		step.Observation = obs
	}
	xy.currentTimeStep = step

	return xy, nil
}

// Reset resets the environment to some starting state
func (x *XY) Reset() (ts.TimeStep, error) {
	// Reset embedded environment
	step, err := x.RowColer.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}

	// Convert the observation to (x, y) coordinates
	newObs, err := x.getObs(step.Observation)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not calculate "+
			"observation: %v", err)
	}

	step.Observation = newObs
	x.currentTimeStep = step

	return step, nil
}

// Step takes one environmental step given some action
func (x *XY) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	// Take a step in the embedded environment
	// step will be the TimeStep with S_{t+1} and R_{t} for action A_{t}
	step, _, err := x.RowColer.Step(action)
	if err != nil {
		return ts.TimeStep{}, true, err
	}

	// Convert the observation to (x, y) coordinates
	newObs, err := x.getObs(step.Observation)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not calculate "+
			"observation: %v", err)
	}

	step.Observation = newObs
	x.currentTimeStep = step

	return step, step.Last(), nil
}

// CurrentTimeStep returns the current time step in the environment
func (x *XY) CurrentTimeStep() ts.TimeStep {
	return x.currentTimeStep
}

// getObs returns the (x, y) version of a one-hot encoded vector
func (x *XY) getObs(obs *mat.VecDense) (*mat.VecDense, error) {
	// Get the index of the 1 in the one-hot encoding
	index := floatutils.Where(
		obs.RawVector().Data,
		func(v float64) bool {
			return v == 1.0
		},
	)
	if len(index) != 1 {
		return nil, fmt.Errorf("getObs: vector is not one-hot")
	}

	// Construct the (x, y) vector observation
	row := index[0] / x.Cols()
	col := index[0] % x.Cols()

	return mat.NewVecDense(2, []float64{float64(col), float64(row)}), nil
}

// ObservationSpec returns the observation specification of the
// environment
func (x *XY) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(2, nil)
	low := mat.NewVecDense(2, []float64{0, 0})
	high := mat.NewVecDense(2, []float64{
		float64(x.Cols() - 1),
		float64(x.Rows() - 1),
	})

	return env.NewSpec(shape, env.Observation, low, high, env.Discrete)
}

// String returns the string representation of the environment
func (x *XY) String() string {
	return fmt.Sprintf("XY: %v", x.RowColer)
}
