package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridnav/utils/matutils"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// Channels is the number of colour channels in an image observation
const Channels int = 3

// RGB colours of the image encoding, each channel in [0, 1]
var (
	EmptyColour    = [Channels]float64{0, 0, 0}
	GoalColour     = [Channels]float64{0, 1, 0}
	PlayerColour   = [Channels]float64{1, 0, 0}
	ObstacleColour = [Channels]float64{0, 0, 1}
)

// Colour returns the RGB colour of a Cell in the image encoding
func (c Cell) Colour() [Channels]float64 {
	switch c {
	case Obstacle:
		return ObstacleColour
	case Goal:
		return GoalColour
	default:
		return EmptyColour
	}
}

// oneHot returns the one-hot encoding of position p in a size x size
// grid: a vector of length size*size with index row*size+col set to 1
func oneHot(p Position, size int) *mat.VecDense {
	return matutils.VecOneHot(size*size, p.Row*size+p.Col)
}

// gridImage returns the row-major (size, size, 3) image of the grid
// without the player
func gridImage(g *Grid) []float64 {
	img := make([]float64, g.size*g.size*Channels)
	for i, cell := range g.cells {
		colour := cell.Colour()
		copy(img[i*Channels:(i+1)*Channels], colour[:])
	}
	return img
}

// playerImage returns a copy of the static grid image with the cell at
// p painted in the player colour, whatever lies beneath it
func playerImage(static []float64, p Position, size int) []float64 {
	img := make([]float64, len(static))
	copy(img, static)

	i := (p.Row*size + p.Col) * Channels
	copy(img[i:i+Channels], PlayerColour[:])
	return img
}

// decode recovers the agent's position from an observation in either
// encoding
func decode(obs mat.Vector, size int) (Position, error) {
	switch obs.Len() {
	case size * size:
		for i := 0; i < obs.Len(); i++ {
			if obs.AtVec(i) == 1.0 {
				return Position{i / size, i % size}, nil
			}
		}
		return Position{}, fmt.Errorf("decode: vector is not one-hot")

	case size * size * Channels:
		for i := 0; i < size*size; i++ {
			j := i * Channels
			if obs.AtVec(j) == PlayerColour[0] &&
				obs.AtVec(j+1) == PlayerColour[1] &&
				obs.AtVec(j+2) == PlayerColour[2] {
				return Position{i / size, i % size}, nil
			}
		}
		return Position{}, fmt.Errorf("decode: no player in image")
	}

	return Position{}, fmt.Errorf("decode: observation length %d matches "+
		"no encoding of a grid of size %d", obs.Len(), size)
}

// observe returns the observation of the agent at position p in the
// configured encoding
func (g *GridWorld) observe(p Position) *mat.VecDense {
	if !g.config.ImageObservation {
		return oneHot(p, g.grid.size)
	}

	img := playerImage(g.staticImage(), p, g.grid.size)
	return mat.NewVecDense(len(img), img)
}

// staticImage returns the cached image of the grid without the player,
// building it on first use
func (g *GridWorld) staticImage() []float64 {
	if g.static == nil {
		g.static = gridImage(g.grid)
	}
	return g.static
}

// Image returns the image encoding of the current state as a tensor of
// shape (rows, cols, 3), regardless of the configured observation
// encoding
func (g *GridWorld) Image() *tensor.Dense {
	size := g.grid.size
	img := playerImage(g.staticImage(), g.position, size)
	return tensor.New(tensor.WithShape(size, size, Channels),
		tensor.WithBacking(img))
}

// OneHot returns the one-hot encoding of the current state, regardless
// of the configured observation encoding
func (g *GridWorld) OneHot() *mat.VecDense {
	return oneHot(g.position, g.grid.size)
}
