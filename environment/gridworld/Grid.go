package gridworld

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Grid is a square board of Cells. A Grid is never modified after it
// has been generated or parsed.
type Grid struct {
	size  int
	cells []Cell // row-major
	goal  Position
}

// GenerateGrid procedurally generates a size x size Grid, drawing all
// randomness from src in a fixed order so that the same source state
// always produces the same Grid:
//
//  1. The goal column of row 0 is drawn uniformly from [0, size).
//  2. Each cell of rows 1 through size-2 is an obstacle with
//     probability rho, one Bernoulli trial per cell in row-major order.
//  3. The last row is left empty. Its last column is the start cell.
func GenerateGrid(size int, rho float64, src rand.Source) (*Grid, error) {
	if size < MinGridSize {
		return nil, fmt.Errorf("generateGrid: size %d < %d: %w", size,
			MinGridSize, ErrInvalidConfiguration)
	}
	if rho < 0 || rho > 1 {
		return nil, fmt.Errorf("generateGrid: rho %v ∉ [0, 1]: %w", rho,
			ErrInvalidConfiguration)
	}

	cells := make([]Cell, size*size)

	goalCol := rand.New(src).Intn(size)
	cells[goalCol] = Goal

	obstacle := distuv.Bernoulli{P: rho, Src: src}
	for r := 1; r < size-1; r++ {
		for c := 0; c < size; c++ {
			if obstacle.Rand() == 1 {
				cells[r*size+c] = Obstacle
			}
		}
	}

	return &Grid{size, cells, Position{0, goalCol}}, nil
}

// ParseGrid builds a Grid from ASCII art, one string per row. Legal
// characters are ' ' or '.' (empty), '#' (obstacle), 'G' (goal) and
// 'P' (start marker, treated as empty). The art must be square, contain
// exactly one goal, and leave the bottom right start cell empty.
func ParseGrid(art []string) (*Grid, error) {
	size := len(art)
	if size < MinGridSize {
		return nil, fmt.Errorf("parseGrid: need at least %d rows, got %d",
			MinGridSize, size)
	}

	cells := make([]Cell, 0, size*size)
	goals := 0
	var goal Position

	for r, row := range art {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("parseGrid: row %d has %d columns, "+
				"expected %d", r, len(runes), size)
		}

		for c, ch := range runes {
			switch ch {
			case EmptyChar, '.', PlayerChar:
				cells = append(cells, Empty)
			case ObstacleChar:
				cells = append(cells, Obstacle)
			case GoalChar:
				cells = append(cells, Goal)
				goal = Position{r, c}
				goals++
			default:
				return nil, fmt.Errorf("parseGrid: illegal character %q at "+
					"(%d, %d)", ch, r, c)
			}
		}
	}

	if goals != 1 {
		return nil, fmt.Errorf("parseGrid: expected exactly 1 goal, got %d",
			goals)
	}
	if start := cells[size*size-1]; start != Empty {
		return nil, fmt.Errorf("parseGrid: start cell must be empty, got %v",
			start)
	}

	return &Grid{size, cells, goal}, nil
}

// Size returns the number of rows (equivalently columns) in the Grid
func (g *Grid) Size() int {
	return g.size
}

// At returns the Cell at position p. At panics if p is outside the Grid.
func (g *Grid) At(p Position) Cell {
	if !p.In(g.size) {
		panic(fmt.Sprintf("at: position %v outside grid of size %d", p,
			g.size))
	}
	return g.cells[p.Row*g.size+p.Col]
}

// Goal returns the position of the goal cell
func (g *Grid) Goal() Position {
	return g.goal
}

// Start returns the position the agent starts each episode at
func (g *Grid) Start() Position {
	return Position{g.size - 1, g.size - 1}
}

// Obstacles returns the positions of all obstacles in row-major order
func (g *Grid) Obstacles() []Position {
	var obstacles []Position
	for i, cell := range g.cells {
		if cell == Obstacle {
			obstacles = append(obstacles, Position{i / g.size, i % g.size})
		}
	}
	return obstacles
}

// String returns the Grid as ASCII art with the start cell marked
func (g *Grid) String() string {
	var b strings.Builder
	start := g.Start()

	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			p := Position{r, c}
			if p == start {
				b.WriteRune(PlayerChar)
			} else {
				b.WriteRune(g.At(p).Rune())
			}
		}
		if r < g.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
