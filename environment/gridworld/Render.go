package gridworld

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// DisplaySize is the width and height in pixels of rendered frames
const DisplaySize int = 256

// Render draws the image encoding of the current state, magnified to
// DisplaySize x DisplaySize pixels with nearest-neighbour sampling.
// Render works whether or not the GridWorld uses image observations.
func (g *GridWorld) Render() image.Image {
	return g.draw().Image()
}

// SavePNG renders the current state and saves it as a PNG at path
func (g *GridWorld) SavePNG(path string) error {
	if err := g.draw().SavePNG(path); err != nil {
		return fmt.Errorf("savePNG: %v", err)
	}
	return nil
}

func (g *GridWorld) draw() *gg.Context {
	size := g.grid.Size()
	img := playerImage(g.staticImage(), g.position, size)

	dc := gg.NewContext(DisplaySize, DisplaySize)
	for y := 0; y < DisplaySize; y++ {
		row := y * size / DisplaySize
		for x := 0; x < DisplaySize; x++ {
			col := x * size / DisplaySize

			i := (row*size + col) * Channels
			dc.SetRGB(img[i], img[i+1], img[i+2])
			dc.SetPixel(x, y)
		}
	}

	return dc
}
