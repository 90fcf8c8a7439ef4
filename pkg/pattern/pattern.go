// Package pattern defines the data model shared by the conversion pipeline:
// normalized crop rectangles, grid dimensions, tone parameters and the binary
// stitch grid handed to renderers and exporters.
package pattern

import "errors"

// Sentinel errors for caller contract violations. The numeric stages
// themselves are total; these only surface pre-validated input that slipped
// through the caller's own checks.
var (
	ErrInvalidGeometry      = errors.New("invalid crop geometry")
	ErrInvalidDimensions    = errors.New("invalid grid dimensions")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// CropRect is a crop rectangle in normalized coordinates: each value is a
// fraction of the source image dimensions in [0,1], with X1 <= X2 and
// Y1 <= Y2. The pipeline clamps but never mutates the caller's rectangle.
type CropRect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// FullCrop returns a rectangle covering the whole source image.
func FullCrop() CropRect {
	return CropRect{X1: 0, Y1: 0, X2: 1, Y2: 1}
}

// Clamp returns a copy of the rectangle with every coordinate clamped to
// [0,1] and the corners ordered.
func (r CropRect) Clamp() CropRect {
	c := CropRect{
		X1: clamp01(r.X1),
		Y1: clamp01(r.Y1),
		X2: clamp01(r.X2),
		Y2: clamp01(r.Y2),
	}
	if c.X2 < c.X1 {
		c.X1, c.X2 = c.X2, c.X1
	}
	if c.Y2 < c.Y1 {
		c.Y1, c.Y2 = c.Y2, c.Y1
	}
	return c
}

// Empty reports whether the rectangle has no extent along either axis.
func (r CropRect) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GridDimensions is the output stitch grid size. Interactive callers keep
// both sides in [10,200]; the pipeline only rejects non-positive or absurd
// values (see Validate).
type GridDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// maxGridSide guards against absurd dimensions that would only exhaust
// memory; interactive callers never exceed 200.
const maxGridSide = 4096

// Validate rejects non-positive or absurd dimensions.
func (d GridDimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 || d.Width > maxGridSide || d.Height > maxGridSide {
		return ErrInvalidDimensions
	}
	return nil
}

// Cells returns the total cell count of the grid.
func (d GridDimensions) Cells() int {
	return d.Width * d.Height
}

// ToneParams holds contrast and brightness correction, both percentages
// where 100 is the identity transform. Contrast ranges 50-200 and
// brightness 50-150 in the interactive controls.
type ToneParams struct {
	Contrast   int `json:"contrast"`
	Brightness int `json:"brightness"`
}

// IdentityTone returns tone parameters that leave pixel values unchanged.
func IdentityTone() ToneParams {
	return ToneParams{Contrast: 100, Brightness: 100}
}

// BinaryGrid is the terminal output of a conversion: Height rows of Width
// cells in row-major order, each cell 0 or 1 where 1 is a dark/filled
// stitch. Ownership passes to the caller.
type BinaryGrid [][]int

// Dimensions returns the grid size. A nil grid has zero dimensions.
func (g BinaryGrid) Dimensions() GridDimensions {
	if len(g) == 0 {
		return GridDimensions{}
	}
	return GridDimensions{Width: len(g[0]), Height: len(g)}
}

// Inverted returns a copy of the grid with every cell flipped. Applying it
// twice yields the original grid.
func (g BinaryGrid) Inverted() BinaryGrid {
	out := make(BinaryGrid, len(g))
	for y, row := range g {
		out[y] = make([]int, len(row))
		for x, cell := range row {
			out[y][x] = 1 - cell
		}
	}
	return out
}

// Count returns how many cells are filled (value 1).
func (g BinaryGrid) Count() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			n += cell
		}
	}
	return n
}
