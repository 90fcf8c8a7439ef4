// Package crochetpattern converts raster images into fixed-size two-tone
// stitch grids for crochet and cross-stitch work.
//
// The conversion is a single-direction pipeline: a normalized crop region is
// extracted from the source image, resampled to one sample per grid cell,
// tone-corrected, reduced to luminance, and binarized by one of seven
// interchangeable algorithms before optional inversion and assembly into a
// row-major grid.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//		"os"
//
//		crochetpattern "github.com/JMRLudan/CrochetPattern"
//		"github.com/JMRLudan/CrochetPattern/pkg/binarize"
//		"github.com/JMRLudan/CrochetPattern/pkg/export"
//		"github.com/JMRLudan/CrochetPattern/pkg/pattern"
//	)
//
//	func main() {
//		conv := crochetpattern.New()
//
//		img, err := conv.LoadImage("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		dims := pattern.GridDimensions{Width: 60, Height: 80}
//		grid, err := conv.ConvertWithDefaults(img, binarize.FloydSteinberg, dims, false)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if err := export.Encode(os.Stdout, grid); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of five main components:
//
// 1. Sampler (pkg/sampler): crop extraction, resampling, tone and grayscale
// 2. Binarize (pkg/binarize): the seven pattern algorithms
// 3. Preset (pkg/preset): per-algorithm parameter defaults for callers
// 4. Export (pkg/export): X/O text serialization of finished grids
// 5. Render (pkg/render): preview images with stitch-counting gridlines
//
// Each conversion run is a pure function of its inputs: no state survives
// between runs and independent runs may execute in parallel. A single run is
// not internally parallelized; dithering algorithms own a private error
// buffer for the duration of the run.
package crochetpattern

import (
	"image"
	"io"

	"github.com/JMRLudan/CrochetPattern/pkg/binarize"
	"github.com/JMRLudan/CrochetPattern/pkg/export"
	"github.com/JMRLudan/CrochetPattern/pkg/imageio"
	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
	"github.com/JMRLudan/CrochetPattern/pkg/preset"
	"github.com/JMRLudan/CrochetPattern/pkg/render"
	"github.com/JMRLudan/CrochetPattern/pkg/sampler"
)

// Version of the crochet pattern library
const Version = "1.0.0"

// Converter provides a high-level interface for running image-to-pattern
// conversions. It is stateless and safe for concurrent use.
type Converter struct {
	renderOpts render.Options
}

// New creates a Converter with default rendering options.
func New() *Converter {
	return &Converter{renderOpts: render.DefaultOptions()}
}

// NewWithRenderOptions creates a Converter that renders previews with
// custom options.
func NewWithRenderOptions(opts render.Options) *Converter {
	return &Converter{renderOpts: opts}
}

// Convert runs the full pipeline: crop, resample, tone-adjust, grayscale,
// binarize with the given algorithm parameters, then invert if requested and
// assemble the row-major grid.
func (c *Converter) Convert(src image.Image, crop pattern.CropRect, dims pattern.GridDimensions,
	tone pattern.ToneParams, params binarize.Params, invert bool) (pattern.BinaryGrid, error) {

	field, err := sampler.Luminance(src, crop, dims, tone)
	if err != nil {
		return nil, err
	}
	return binarize.Run(field, dims, params, invert)
}

// ConvertWithDefaults converts the whole image using the preset defaults
// for the given algorithm.
func (c *Converter) ConvertWithDefaults(src image.Image, alg binarize.Algorithm,
	dims pattern.GridDimensions, invert bool) (pattern.BinaryGrid, error) {

	entry, err := preset.For(alg)
	if err != nil {
		return nil, err
	}
	return c.Convert(src, pattern.FullCrop(), dims, entry.Tone, entry.Params, invert)
}

// LoadImage loads a source image from a file path or URL.
func (c *Converter) LoadImage(source string) (image.Image, error) {
	return imageio.LoadSmart(source)
}

// LoadImageFromReader decodes a source image from a reader.
func (c *Converter) LoadImageFromReader(r io.Reader) (image.Image, error) {
	return imageio.Decode(r)
}

// Export writes the grid in the X/O text table format.
func (c *Converter) Export(w io.Writer, grid pattern.BinaryGrid) error {
	return export.Encode(w, grid)
}

// RenderPreview draws the grid as a preview image with gridlines.
func (c *Converter) RenderPreview(grid pattern.BinaryGrid) *image.NRGBA {
	return render.Render(grid, c.renderOpts)
}

// SavePreview renders the grid and encodes it to a file.
func (c *Converter) SavePreview(grid pattern.BinaryGrid, path, format string, quality int, lossless bool) error {
	return imageio.Save(c.RenderPreview(grid), path, format, quality, lossless)
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
