// Package render draws a binary stitch grid as a preview image: two fixed
// colors for empty and filled cells, gridlines between every cell and
// heavier gridlines every ten cells to ease counting while crafting.
package render

import (
	"image"
	"image/color"

	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

// Options controls the preview rendering.
type Options struct {
	CellSize int // pixels per stitch cell

	Filled   color.NRGBA
	Empty    color.NRGBA
	Gridline color.NRGBA
	Major    color.NRGBA
}

// DefaultOptions returns the rendering defaults: 12px cells, black stitches
// on white, gray gridlines with darker major lines.
func DefaultOptions() Options {
	return Options{
		CellSize: 12,
		Filled:   color.NRGBA{0, 0, 0, 255},
		Empty:    color.NRGBA{255, 255, 255, 255},
		Gridline: color.NRGBA{200, 200, 200, 255},
		Major:    color.NRGBA{90, 90, 90, 255},
	}
}

// majorEvery is the cell interval for heavier gridlines.
const majorEvery = 10

// Render draws the grid into a fresh NRGBA image. A nil or empty grid
// yields a nil image.
func Render(grid pattern.BinaryGrid, opts Options) *image.NRGBA {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil
	}
	if opts.CellSize < 2 {
		opts.CellSize = 2
	}

	gw, gh := len(grid[0]), len(grid)
	cell := opts.CellSize
	img := image.NewNRGBA(image.Rect(0, 0, gw*cell+1, gh*cell+1))

	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			c := opts.Empty
			if grid[y][x] == 1 {
				c = opts.Filled
			}
			fillRect(img, x*cell, y*cell, cell, cell, c)
		}
	}

	for x := 0; x <= gw; x++ {
		c, stroke := opts.Gridline, 1
		if x%majorEvery == 0 || x == gw {
			c, stroke = opts.Major, 2
		}
		for s := 0; s < stroke; s++ {
			drawVLine(img, x*cell-s, 0, gh*cell+1, c)
		}
	}
	for y := 0; y <= gh; y++ {
		c, stroke := opts.Gridline, 1
		if y%majorEvery == 0 || y == gh {
			c, stroke = opts.Major, 2
		}
		for s := 0; s < stroke; s++ {
			drawHLine(img, y*cell-s, 0, gw*cell+1, c)
		}
	}

	return img
}

func fillRect(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	for row := y; row < y+h; row++ {
		drawHLine(img, row, x, x+w, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
