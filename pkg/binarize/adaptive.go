package binarize

// AdaptiveParams parameterizes local-mean adaptive thresholding. BlockSize
// is the side of the square neighborhood averaged around each cell and must
// be odd; even values are forced odd by adding one. Threshold biases the
// decision boundary away from the local mean.
type AdaptiveParams struct {
	Threshold float64 `json:"threshold"`
	BlockSize int     `json:"adaptiveBlockSize"`
}

func (AdaptiveParams) Algorithm() Algorithm { return Adaptive }

func (p AdaptiveParams) apply(field []float64, width, height int) []int {
	block := p.BlockSize
	if block%2 == 0 {
		block++
	}
	if block < 1 {
		block = 1
	}
	half := block / 2
	bias := (p.Threshold - 128) / 4

	bits := make([]int, len(field))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Neighborhood clipped to grid bounds: edge cells
			// average fewer samples, no wraparound or mirroring.
			x0, x1 := x-half, x+half
			y0, y1 := y-half, y+half
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 >= width {
				x1 = width - 1
			}
			if y1 >= height {
				y1 = height - 1
			}

			sum := 0.0
			for ny := y0; ny <= y1; ny++ {
				for nx := x0; nx <= x1; nx++ {
					sum += field[ny*width+nx]
				}
			}
			mean := sum / float64((x1-x0+1)*(y1-y0+1))

			i := y*width + x
			if field[i] < mean-bias {
				bits[i] = 1
			}
		}
	}
	return bits
}
