package binarize

import "math"

// Sobel convolution kernels for the horizontal and vertical gradients.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// SobelParams parameterizes edge-only extraction: a cell is filled iff the
// Sobel gradient magnitude at it exceeds Sensitivity*2. Border cells are
// always empty since the 3x3 kernels need a full neighborhood.
type SobelParams struct {
	Sensitivity float64 `json:"edgeSensitivity"`
}

func (SobelParams) Algorithm() Algorithm { return Sobel }

func (p SobelParams) apply(field []float64, width, height int) []int {
	bits := make([]int, len(field))
	limit := p.Sensitivity * 2
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := field[(y+ky)*width+(x+kx)]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			if math.Sqrt(gx*gx+gy*gy) > limit {
				bits[y*width+x] = 1
			}
		}
	}
	return bits
}
