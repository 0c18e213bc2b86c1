package gridworld

import "fmt"

// Cell is the kind of a single cell in a Grid. The agent is never
// stored in a Grid, it is tracked separately as a Position.
type Cell int

const (
	Empty Cell = iota
	Obstacle
	Goal
)

// Characters used when drawing a Grid as ASCII art
const (
	EmptyChar    rune = ' '
	ObstacleChar rune = '#'
	GoalChar     rune = 'G'
	PlayerChar   rune = 'P'
)

// Rune returns the ASCII art character of the Cell
func (c Cell) Rune() rune {
	switch c {
	case Obstacle:
		return ObstacleChar
	case Goal:
		return GoalChar
	default:
		return EmptyChar
	}
}

func (c Cell) String() string {
	switch c {
	case Obstacle:
		return "Obstacle"
	case Goal:
		return "Goal"
	default:
		return "Empty"
	}
}

// Position is a (row, col) coordinate in a Grid, 0-indexed from the
// top left corner
type Position struct {
	Row, Col int
}

// Add returns the Position p displaced by (dRow, dCol)
func (p Position) Add(dRow, dCol int) Position {
	return Position{p.Row + dRow, p.Col + dCol}
}

// In returns whether p lies within a size x size grid
func (p Position) In(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Action is one of the four discrete moves of the agent
//
//	Action	Meaning		(dRow, dCol)
//	  0		Down		(+1, 0)
//	  1		Left		(0, -1)
//	  2		Up			(-1, 0)
//	  3		Right		(0, +1)
type Action int

const (
	Down Action = iota
	Left
	Up
	Right
)

// Actions is the number of legal actions
const Actions int = 4

// Valid returns whether a is one of the four legal actions
func (a Action) Valid() bool {
	return a >= Down && a <= Right
}

// Delta returns the (row, col) displacement of the action
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	}
	panic(fmt.Sprintf("delta: illegal action %d ∉ (0, 1, 2, 3)", int(a)))
}

func (a Action) String() string {
	switch a {
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
