// Package sampler turns a source image into a luminance field: it extracts
// the normalized crop region, resamples it onto the target grid with one
// sample per cell, applies tone correction and reduces each sample to a
// single BT.601 luminance value.
package sampler

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

// Luminance runs the crop, resample, tone and grayscale stages and returns a
// fresh row-major field of pattern.GridDimensions.Cells() values in [0,255].
// The source image is only read, never mutated.
func Luminance(src image.Image, crop pattern.CropRect, dims pattern.GridDimensions, tone pattern.ToneParams) ([]float64, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("sampling %dx%d grid: %w", dims.Width, dims.Height, err)
	}

	rect, err := cropPixels(src.Bounds(), crop)
	if err != nil {
		return nil, err
	}

	// One nearest-neighbor sample per output cell: box-scale the crop
	// region onto the grid raster.
	region := imaging.Crop(src, rect)
	sampled := imaging.Resize(region, dims.Width, dims.Height, imaging.NearestNeighbor)

	field := make([]float64, 0, dims.Cells())
	for y := 0; y < dims.Height; y++ {
		for x := 0; x < dims.Width; x++ {
			c := sampled.NRGBAAt(x, y)
			r := AdjustTone(float64(c.R), tone)
			g := AdjustTone(float64(c.G), tone)
			b := AdjustTone(float64(c.B), tone)
			field = append(field, Luma(r, g, b))
		}
	}
	return field, nil
}

// cropPixels maps a normalized crop rectangle onto source pixel coordinates.
func cropPixels(bounds image.Rectangle, crop pattern.CropRect) (image.Rectangle, error) {
	c := crop.Clamp()
	if c.Empty() {
		return image.Rectangle{}, fmt.Errorf("crop %+v: %w", crop, pattern.ErrInvalidGeometry)
	}

	fw, fh := float64(bounds.Dx()), float64(bounds.Dy())
	x0 := bounds.Min.X + int(c.X1*fw+0.5)
	y0 := bounds.Min.Y + int(c.Y1*fh+0.5)
	x1 := bounds.Min.X + int(c.X2*fw+0.5)
	y1 := bounds.Min.Y + int(c.Y2*fh+0.5)

	rect := image.Rect(x0, y0, x1, y1).Intersect(bounds)
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("crop %+v collapses below one source pixel: %w", crop, pattern.ErrInvalidGeometry)
	}
	return rect, nil
}

// AdjustTone applies contrast and brightness correction to a single channel
// value in [0,255]. Contrast pivots around mid-gray; brightness shifts by
// 2.55 per percentage point. Contrast=100, Brightness=100 is the identity.
func AdjustTone(v float64, tone pattern.ToneParams) float64 {
	adjusted := (v-128)*(float64(tone.Contrast)/100) + 128 + float64(tone.Brightness-100)*2.55
	if adjusted < 0 {
		return 0
	}
	if adjusted > 255 {
		return 255
	}
	return adjusted
}

// Luma reduces an RGB triple to a single luminance value using the ITU-R
// BT.601 weights 0.299/0.587/0.114, expressed over a common denominator so
// a uniform gray maps back to itself exactly. No rounding; downstream
// algorithms consume the float directly.
func Luma(r, g, b float64) float64 {
	return (299*r + 587*g + 114*b) / 1000
}
