package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazepath/grid"
)

var (
	// ErrBadScale indicates a pixel scale below 1.
	ErrBadScale = errors.New("render: scale must be at least 1")
	// ErrEmptyImage indicates nothing is left to draw after trimming.
	ErrEmptyImage = errors.New("render: nothing to draw")
)

// Palette maps each tile to the colour it is drawn with.
var Palette = map[grid.Tile]color.RGBA{
	grid.Wall:    {40, 40, 40, 255},
	grid.Opening: {100, 120, 255, 255},
	grid.Blank:   {255, 255, 255, 255},
	grid.Path:    {40, 180, 70, 255},
}

// Image rasterizes the rendered lines of g at one pixel per tile. Rows
// shorter than the widest line are filled with the blank colour.
func Image(g *grid.Grid) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	lines := Lines(g)
	cols := 0
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	if cols == 0 {
		return nil, ErrEmptyImage
	}

	pic := image.NewRGBA(image.Rect(0, 0, cols, len(lines)))
	for y, l := range lines {
		for x := 0; x < cols; x++ {
			t := grid.Blank
			if x < len(l) {
				t = grid.Tile(l[x])
			}
			pic.SetRGBA(x, y, Palette[t])
		}
	}
	return pic, nil
}

// PNG draws g scaled by scale pixels per tile and encodes it to w.
func PNG(w io.Writer, g *grid.Grid, scale int) error {
	if scale < 1 {
		return fmt.Errorf("%w: got %d", ErrBadScale, scale)
	}
	pic, err := Image(g)
	if err != nil {
		return err
	}
	b := pic.Bounds()
	scaled := image_utils.ResizeImage(pic, b.Dx()*scale, b.Dy()*scale)
	if err := png.Encode(w, image_utils.ToRGBA(scaled)); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
