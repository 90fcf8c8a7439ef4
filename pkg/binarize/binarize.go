// Package binarize maps a luminance field onto a binary stitch grid. Seven
// interchangeable strategies are provided, from a plain global threshold to
// error-diffusion dithering and Sobel edge extraction. Each strategy carries
// exactly the parameters it consults, expressed as one Params variant.
package binarize

import (
	"fmt"

	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

// Algorithm identifies one of the binarization strategies.
type Algorithm string

const (
	Threshold      Algorithm = "threshold"
	Otsu           Algorithm = "otsu"
	FloydSteinberg Algorithm = "floyd-steinberg"
	Atkinson       Algorithm = "atkinson"
	Bayer          Algorithm = "bayer"
	Adaptive       Algorithm = "adaptive"
	Sobel          Algorithm = "sobel"
)

// Algorithms lists every supported algorithm identifier.
func Algorithms() []Algorithm {
	return []Algorithm{Threshold, Otsu, FloydSteinberg, Atkinson, Bayer, Adaptive, Sobel}
}

// Params is the tagged union of per-algorithm parameters: one variant type
// per algorithm, each carrying only the fields that algorithm consults.
// The set of variants is closed; implementations live in this package.
type Params interface {
	// Algorithm returns the identifier of the strategy this variant
	// parameterizes.
	Algorithm() Algorithm

	// apply maps the luminance field to a flat binary sequence in the
	// same row-major order, before any global inversion.
	apply(field []float64, width, height int) []int
}

// Run executes one binarization strategy over a luminance field and
// assembles the result into a row-major grid. If invert is set every cell is
// flipped after the strategy runs, uniformly for all algorithms.
func Run(field []float64, dims pattern.GridDimensions, params Params, invert bool) (pattern.BinaryGrid, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("binarize %dx%d grid: %w", dims.Width, dims.Height, err)
	}
	if len(field) != dims.Cells() {
		return nil, fmt.Errorf("binarize: field has %d values, grid needs %d: %w",
			len(field), dims.Cells(), pattern.ErrInvalidDimensions)
	}

	bits := params.apply(field, dims.Width, dims.Height)
	if invert {
		for i := range bits {
			bits[i] = 1 - bits[i]
		}
	}
	return assemble(bits, dims), nil
}

// assemble reshapes the flat bit sequence into rows, matching the iteration
// order used by every strategy (index = y*width + x).
func assemble(bits []int, dims pattern.GridDimensions) pattern.BinaryGrid {
	grid := make(pattern.BinaryGrid, dims.Height)
	for y := 0; y < dims.Height; y++ {
		grid[y] = bits[y*dims.Width : (y+1)*dims.Width : (y+1)*dims.Width]
	}
	return grid
}
