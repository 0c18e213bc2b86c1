package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridnav/environment"
	"gonum.org/v1/gonum/mat"
)

// SingleStart is an environment.Starter which always starts episodes
// in the same cell. Starting states are one-hot encodings of the cell.
type SingleStart struct {
	state *mat.VecDense
	size  int
}

// NewSingleStart returns a Starter which starts all episodes at
// position p of a size x size grid
func NewSingleStart(p Position, size int) (environment.Starter, error) {
	if !p.In(size) {
		return &SingleStart{}, fmt.Errorf("newSingleStart: position %v "+
			"outside grid of size %d", p, size)
	}

	return &SingleStart{oneHot(p, size), size}, nil
}

// Start returns the starting state
func (s *SingleStart) Start() *mat.VecDense {
	start := mat.NewVecDense(s.state.Len(), nil)
	start.CopyVec(s.state)
	return start
}
