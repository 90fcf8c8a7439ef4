package binarize

// Error-diffusion and ordered dithering variants. The diffusion strategies
// own a single mutable error buffer per run, scoped to the apply call and
// never shared across runs: later cells read the accumulated correction that
// earlier cells propagated in scan order.

// offset is one error-diffusion target relative to the cell being quantized.
type offset struct {
	dx, dy int
	weight float64
}

// floydSteinbergKernel distributes the full quantization error to the four
// unvisited neighbors. The weights sum to 1.
var floydSteinbergKernel = []offset{
	{1, 0, 7.0 / 16},
	{-1, 1, 3.0 / 16},
	{0, 1, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// atkinsonKernel redistributes six of eight error units and discards the
// remaining two, which lightens the output. The weights sum to 6/8.
var atkinsonKernel = []offset{
	{1, 0, 1.0 / 8},
	{2, 0, 1.0 / 8},
	{-1, 1, 1.0 / 8},
	{0, 1, 1.0 / 8},
	{1, 1, 1.0 / 8},
	{0, 2, 1.0 / 8},
}

// FloydSteinbergParams parameterizes Floyd-Steinberg error diffusion.
// Strength is a percentage in 0-200 scaling how much quantization error is
// propagated; 0 degenerates to the simple threshold.
type FloydSteinbergParams struct {
	Threshold float64 `json:"threshold"`
	Strength  float64 `json:"ditherStrength"`
}

func (FloydSteinbergParams) Algorithm() Algorithm { return FloydSteinberg }

func (p FloydSteinbergParams) apply(field []float64, width, height int) []int {
	return diffuse(field, width, height, p.Threshold, p.Strength, floydSteinbergKernel)
}

// AtkinsonParams parameterizes Atkinson error diffusion, the deliberately
// lossy variant used by the original Macintosh.
type AtkinsonParams struct {
	Threshold float64 `json:"threshold"`
	Strength  float64 `json:"ditherStrength"`
}

func (AtkinsonParams) Algorithm() Algorithm { return Atkinson }

func (p AtkinsonParams) apply(field []float64, width, height int) []int {
	return diffuse(field, width, height, p.Threshold, p.Strength, atkinsonKernel)
}

// diffuse runs a row-major error-diffusion scan. Each cell quantizes its
// error-accumulated luminance against threshold, emits 1 when quantized to
// black, and pushes the scaled quantization error onto the unvisited
// neighbors named by the kernel, skipping any outside the grid.
func diffuse(field []float64, width, height int, threshold, strength float64, kernel []offset) []int {
	buf := make([]float64, len(field))
	copy(buf, field)

	scale := strength / 100
	bits := make([]int, len(field))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			old := buf[i]
			newVal := 255.0
			if old < threshold {
				bits[i] = 1
				newVal = 0
			}
			quant := (old - newVal) * scale
			for _, o := range kernel {
				nx, ny := x+o.dx, y+o.dy
				if nx < 0 || nx >= width || ny >= height {
					continue
				}
				buf[ny*width+nx] += quant * o.weight
			}
		}
	}
	return bits
}

// bayerMatrix is the fixed 4x4 ordered-dithering threshold pattern.
var bayerMatrix = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// BayerParams parameterizes ordered dithering over the 4x4 Bayer matrix.
// No error propagates between cells; Strength scales how far the matrix
// displaces the local threshold, and 0 reduces to the simple threshold.
type BayerParams struct {
	Threshold float64 `json:"threshold"`
	Strength  float64 `json:"ditherStrength"`
}

func (BayerParams) Algorithm() Algorithm { return Bayer }

func (p BayerParams) apply(field []float64, width, height int) []int {
	scale := p.Strength / 100
	bits := make([]int, len(field))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			local := p.Threshold + (bayerMatrix[y%4][x%4]/16-0.5)*128*scale
			if field[i] < local {
				bits[i] = 1
			}
		}
	}
	return bits
}
