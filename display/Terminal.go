// Package display draws grid navigation environments on a terminal
package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	ts "github.com/samuelfneumann/gridnav/timestep"
	"github.com/samuelfneumann/gridnav/utils/floatutils"
	"gorgonia.org/tensor"
)

// CellWidth is the number of terminal columns used to draw one grid
// cell, so that cells appear roughly square
const CellWidth int = 2

// Imager is an environment whose state can be drawn as an RGB image of
// shape (rows, cols, 3) with channels in [0, 1]
type Imager interface {
	Image() *tensor.Dense
}

// Terminal draws the image encoding of an environment as blocks of
// colour on a terminal screen, with a status line below the grid.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal returns a Terminal drawing on an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Open creates and initializes a new terminal screen
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	s.Clear()

	return NewTerminal(s), nil
}

// Close releases the terminal screen
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Screen returns the underlying screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Draw draws the current state of e along with the status of step
func (t *Terminal) Draw(e Imager, step ts.TimeStep) error {
	t.screen.Clear()

	rows, err := t.drawImage(e.Image())
	if err != nil {
		return fmt.Errorf("draw: %v", err)
	}
	t.drawMessage(status(step), rows)

	t.screen.Show()
	return nil
}

// drawImage draws an image and returns the number of rows drawn
func (t *Terminal) drawImage(img *tensor.Dense) (int, error) {
	shape := img.Shape()
	if len(shape) != 3 || shape[2] != 3 {
		return 0, fmt.Errorf("drawImage: expected image of shape "+
			"(rows, cols, 3), got %v", shape)
	}

	for r := 0; r < shape[0]; r++ {
		for c := 0; c < shape[1]; c++ {
			colour, err := pixel(img, r, c)
			if err != nil {
				return 0, fmt.Errorf("drawImage: %v", err)
			}

			style := tcell.StyleDefault.Background(colour)
			for w := 0; w < CellWidth; w++ {
				t.screen.SetContent(c*CellWidth+w, r, ' ', nil, style)
			}
		}
	}
	return shape[0], nil
}

// drawMessage draws msg on row y
func (t *Terminal) drawMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		t.screen.SetContent(i, y, ch, nil, style)
	}
}

// pixel returns the terminal colour of the pixel at row r, column c
func pixel(img *tensor.Dense, r, c int) (tcell.Color, error) {
	var rgb [3]int32
	for ch := range rgb {
		v, err := img.At(r, c, ch)
		if err != nil {
			return tcell.ColorDefault, err
		}

		f, ok := v.(float64)
		if !ok {
			return tcell.ColorDefault, fmt.Errorf("pixel: expected "+
				"float64 channel, got %T", v)
		}
		rgb[ch] = int32(floatutils.Clip(f, 0, 1) * 255)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

func status(step ts.TimeStep) string {
	msg := fmt.Sprintf("Step: %d  Reward: %.0f  Cost: %.0f", step.Number,
		step.Reward, step.ConstraintCost)
	if step.Last() {
		msg += fmt.Sprintf("  Done: %v", step.EndType())
	}
	return msg
}
