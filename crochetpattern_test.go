package crochetpattern

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/JMRLudan/CrochetPattern/pkg/binarize"
	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

// createUniformImage creates a single-color test image
func createUniformImage(width, height int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createCheckerboard creates a 2x2 black/white checkerboard image
func createCheckerboard() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(0, 1, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 0, 255})
	return img
}

func TestNew(t *testing.T) {
	conv := New()
	if conv == nil {
		t.Error("New() returned nil")
	}
}

func TestConvertUniformMidGray(t *testing.T) {
	// Mid-gray sits exactly at the threshold: the strict less-than rule
	// leaves every stitch empty, and inversion fills every stitch.
	conv := New()
	img := createUniformImage(4, 4, color.NRGBA{128, 128, 128, 255})
	dims := pattern.GridDimensions{Width: 4, Height: 4}

	grid, err := conv.Convert(img, pattern.FullCrop(), dims, pattern.IdentityTone(),
		binarize.ThresholdParams{Threshold: 128}, false)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if grid.Count() != 0 {
		t.Errorf("mid-gray at threshold 128 filled %d cells, want 0", grid.Count())
	}

	inverted, err := conv.Convert(img, pattern.FullCrop(), dims, pattern.IdentityTone(),
		binarize.ThresholdParams{Threshold: 128}, true)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if inverted.Count() != dims.Cells() {
		t.Errorf("inverted grid filled %d cells, want %d", inverted.Count(), dims.Cells())
	}
}

func TestConvertCheckerboard(t *testing.T) {
	conv := New()
	dims := pattern.GridDimensions{Width: 2, Height: 2}

	grid, err := conv.Convert(createCheckerboard(), pattern.FullCrop(), dims,
		pattern.IdentityTone(), binarize.ThresholdParams{Threshold: 128}, false)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	want := pattern.BinaryGrid{{1, 0}, {0, 1}}
	for y := range want {
		for x := range want[y] {
			if grid[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, grid[y][x], want[y][x])
			}
		}
	}
}

func TestConvertWithDefaultsEveryAlgorithm(t *testing.T) {
	conv := New()
	img := createUniformImage(40, 40, color.NRGBA{90, 140, 200, 255})
	dims := pattern.GridDimensions{Width: 10, Height: 12}

	for _, alg := range binarize.Algorithms() {
		grid, err := conv.ConvertWithDefaults(img, alg, dims, false)
		if err != nil {
			t.Errorf("ConvertWithDefaults(%q) failed: %v", alg, err)
			continue
		}
		got := grid.Dimensions()
		if got != dims {
			t.Errorf("%q produced %+v grid, want %+v", alg, got, dims)
		}
	}
}

func TestConvertWithDefaultsUnknownAlgorithm(t *testing.T) {
	conv := New()
	img := createUniformImage(10, 10, color.NRGBA{128, 128, 128, 255})
	dims := pattern.GridDimensions{Width: 10, Height: 10}

	if _, err := conv.ConvertWithDefaults(img, binarize.Algorithm("posterize"), dims, false); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestConvertRunsAreIndependent(t *testing.T) {
	// Identical inputs give identical outputs; no state carries between
	// runs even for the error-diffusing algorithms.
	conv := New()
	img := createCheckerboard()
	dims := pattern.GridDimensions{Width: 8, Height: 8}
	params := binarize.FloydSteinbergParams{Threshold: 128, Strength: 100}

	first, err := conv.Convert(img, pattern.FullCrop(), dims, pattern.IdentityTone(), params, false)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	second, err := conv.Convert(img, pattern.FullCrop(), dims, pattern.IdentityTone(), params, false)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	for y := range first {
		for x := range first[y] {
			if first[y][x] != second[y][x] {
				t.Fatalf("repeated runs differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestExport(t *testing.T) {
	conv := New()
	dims := pattern.GridDimensions{Width: 2, Height: 2}

	grid, err := conv.Convert(createCheckerboard(), pattern.FullCrop(), dims,
		pattern.IdentityTone(), binarize.ThresholdParams{Threshold: 128}, false)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	var sb strings.Builder
	if err := conv.Export(&sb, grid); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if sb.String() != "X,O\nO,X\n" {
		t.Errorf("Export = %q, want X,O / O,X rows", sb.String())
	}
}

func TestRenderPreview(t *testing.T) {
	conv := New()
	dims := pattern.GridDimensions{Width: 10, Height: 10}
	img := createUniformImage(20, 20, color.NRGBA{30, 30, 30, 255})

	grid, err := conv.ConvertWithDefaults(img, binarize.Threshold, dims, false)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	preview := conv.RenderPreview(grid)
	if preview == nil {
		t.Fatal("RenderPreview returned nil")
	}
	if preview.Bounds().Dx() <= dims.Width || preview.Bounds().Dy() <= dims.Height {
		t.Errorf("preview %dx%d is smaller than the grid", preview.Bounds().Dx(), preview.Bounds().Dy())
	}
}

func BenchmarkConvert(b *testing.B) {
	conv := New()
	img := createUniformImage(1920, 1080, color.NRGBA{100, 150, 90, 255})
	dims := pattern.GridDimensions{Width: 100, Height: 150}
	params := binarize.FloydSteinbergParams{Threshold: 128, Strength: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(img, pattern.FullCrop(), dims, pattern.IdentityTone(), params, false); err != nil {
			b.Fatal(err)
		}
	}
}
