package binarize

import (
	"math"
	"testing"

	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

func TestFloydSteinbergKernelConservesError(t *testing.T) {
	// 7/16 + 3/16 + 5/16 + 1/16 = 1: the full quantization error of an
	// interior cell is redistributed.
	sum := 0.0
	for _, o := range floydSteinbergKernel {
		sum += o.weight
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("Floyd-Steinberg kernel weights sum to %v, want 1", sum)
	}
}

func TestAtkinsonKernelDiscardsTwoEighths(t *testing.T) {
	// Atkinson's signature error loss: six of eight units propagate.
	sum := 0.0
	for _, o := range atkinsonKernel {
		sum += o.weight
	}
	if math.Abs(sum-0.75) > 1e-12 {
		t.Errorf("Atkinson kernel weights sum to %v, want 6/8", sum)
	}
}

func TestDiffusionZeroStrengthReducesToThreshold(t *testing.T) {
	dims := pattern.GridDimensions{Width: 16, Height: 16}
	field := gradientField(dims)

	want, err := Run(field, dims, ThresholdParams{Threshold: 128}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	variants := []Params{
		FloydSteinbergParams{Threshold: 128, Strength: 0},
		AtkinsonParams{Threshold: 128, Strength: 0},
		BayerParams{Threshold: 128, Strength: 0},
	}
	for _, params := range variants {
		got, err := Run(field, dims, params, false)
		if err != nil {
			t.Fatalf("%s Run failed: %v", params.Algorithm(), err)
		}
		for y := range want {
			for x := range want[y] {
				if got[y][x] != want[y][x] {
					t.Errorf("%s with strength 0 differs from simple threshold at (%d,%d)",
						params.Algorithm(), x, y)
				}
			}
		}
	}
}

func TestFloydSteinbergPropagation(t *testing.T) {
	// A 1x2 row of 100s at threshold 128: the first cell quantizes to
	// black with error 100, pushing 100*7/16 = 43.75 onto its right
	// neighbor, which lands at 143.75 and quantizes to white. Without
	// propagation both cells would be black.
	dims := pattern.GridDimensions{Width: 2, Height: 1}
	field := []float64{100, 100}

	grid, err := Run(field, dims, FloydSteinbergParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if grid[0][0] != 1 || grid[0][1] != 0 {
		t.Errorf("got %v, want [1 0]", grid[0])
	}
}

func TestFloydSteinbergScanOrder(t *testing.T) {
	// 1x3 row of 100s: the second cell receives enough error to flip
	// white, and its negative error flips the third cell back to black.
	dims := pattern.GridDimensions{Width: 3, Height: 1}
	field := []float64{100, 100, 100}

	grid, err := Run(field, dims, FloydSteinbergParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []int{1, 0, 1}
	for x, w := range want {
		if grid[0][x] != w {
			t.Errorf("cell %d = %d, want %d", x, grid[0][x], w)
		}
	}
}

func TestAtkinsonPartialPropagation(t *testing.T) {
	// Same 1x3 row under Atkinson: only 1/8 of the error reaches each
	// neighbor, too little to flip any cell, so the whole row stays dark.
	dims := pattern.GridDimensions{Width: 3, Height: 1}
	field := []float64{100, 100, 100}

	grid, err := Run(field, dims, AtkinsonParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for x := 0; x < 3; x++ {
		if grid[0][x] != 1 {
			t.Errorf("cell %d = %d, want 1", x, grid[0][x])
		}
	}
}

func TestDiffusionUniformExtremes(t *testing.T) {
	// At the extremes the quantization error is zero, so diffusion and
	// plain thresholding agree exactly.
	dims := pattern.GridDimensions{Width: 8, Height: 8}

	black, err := Run(uniformField(dims, 0), dims, FloydSteinbergParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if black.Count() != dims.Cells() {
		t.Errorf("uniform black filled %d cells, want all %d", black.Count(), dims.Cells())
	}

	white, err := Run(uniformField(dims, 255), dims, AtkinsonParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if white.Count() != 0 {
		t.Errorf("uniform white filled %d cells, want 0", white.Count())
	}
}

func TestBayerLocalThresholds(t *testing.T) {
	// Uniform mid-gray at full strength: exactly the cells whose matrix
	// entry exceeds 8 get a local threshold above 128 and fill.
	dims := pattern.GridDimensions{Width: 4, Height: 4}
	field := uniformField(dims, 128)

	grid, err := Run(field, dims, BayerParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	filled := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			wantFilled := bayerMatrix[y][x] > 8
			if (grid[y][x] == 1) != wantFilled {
				t.Errorf("cell (%d,%d) = %d, matrix entry %v", x, y, grid[y][x], bayerMatrix[y][x])
			}
			filled += grid[y][x]
		}
	}
	if filled != 7 {
		t.Errorf("filled %d cells, want 7", filled)
	}
}

func TestBayerTilesAcrossGrid(t *testing.T) {
	// The 4x4 matrix repeats: cells 4 apart share a decision.
	dims := pattern.GridDimensions{Width: 8, Height: 8}
	field := uniformField(dims, 128)

	grid, err := Run(field, dims, BayerParams{Threshold: 128, Strength: 100}, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if grid[y][x] != grid[y+4][x+4] {
				t.Errorf("cells (%d,%d) and (%d,%d) differ across tile", x, y, x+4, y+4)
			}
		}
	}
}

func BenchmarkFloydSteinberg(b *testing.B) {
	dims := pattern.GridDimensions{Width: 200, Height: 200}
	field := gradientField(dims)
	params := FloydSteinbergParams{Threshold: 128, Strength: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(field, dims, params, false); err != nil {
			b.Fatal(err)
		}
	}
}
