package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	crochetpattern "github.com/JMRLudan/CrochetPattern"
	"github.com/JMRLudan/CrochetPattern/internal/config"
	"github.com/JMRLudan/CrochetPattern/internal/utils"
	"github.com/JMRLudan/CrochetPattern/pkg/binarize"
	"github.com/JMRLudan/CrochetPattern/pkg/export"
	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
	"github.com/JMRLudan/CrochetPattern/pkg/preset"
	"github.com/JMRLudan/CrochetPattern/pkg/render"
)

var log = logrus.New()

func main() {
	cfg := config.Default()

	var in, outDir, cfgPath, algorithm, cropSpec, format string
	var width, height, contrast, brightness, blockSize, cellSize, quality int
	var threshold, strength, sensitivity float64
	var invert, preview, lossless, verbose bool

	flag.StringVar(&in, "in", "", "input image path or URL (jpg/png/gif/webp)")
	flag.StringVar(&outDir, "out", cfg.Output.OutputDir, "output directory")
	flag.StringVar(&cfgPath, "config", "", "JSON config file (defaults used when empty)")

	flag.IntVar(&width, "width", cfg.Grid.Width, "pattern grid width in stitches (10-200)")
	flag.IntVar(&height, "height", cfg.Grid.Height, "pattern grid height in stitches (10-200)")
	flag.StringVar(&cropSpec, "crop", "", "normalized crop rectangle x1,y1,x2,y2 (empty = full image)")

	flag.StringVar(&algorithm, "algorithm", cfg.Algorithm.Name,
		"binarization algorithm: threshold|otsu|floyd-steinberg|atkinson|bayer|adaptive|sobel")
	flag.Float64Var(&threshold, "threshold", cfg.Algorithm.Threshold, "luminance threshold (0-255)")
	flag.Float64Var(&strength, "strength", cfg.Algorithm.Strength, "dither strength percent (0-200)")
	flag.IntVar(&blockSize, "blocksize", cfg.Algorithm.BlockSize, "adaptive threshold block size (odd, 3-31)")
	flag.Float64Var(&sensitivity, "sensitivity", cfg.Algorithm.Sensitivity, "edge sensitivity (10-100)")
	flag.BoolVar(&invert, "invert", cfg.Algorithm.InvertPattern, "invert the finished pattern")

	flag.IntVar(&contrast, "contrast", cfg.Tone.Contrast, "contrast percent (50-200, 100=identity)")
	flag.IntVar(&brightness, "brightness", cfg.Tone.Brightness, "brightness percent (50-150, 100=identity)")

	flag.BoolVar(&preview, "preview", cfg.Output.WritePreview, "write a rendered preview image")
	flag.IntVar(&cellSize, "cellsize", cfg.Render.CellSize, "preview pixels per stitch cell")
	flag.StringVar(&format, "format", cfg.Render.Format, "preview format: png|jpg|webp")
	flag.IntVar(&quality, "quality", cfg.Render.Quality, "preview JPEG/WebP quality (1-100)")
	flag.BoolVar(&lossless, "lossless", cfg.Render.Lossless, "preview WebP lossless mode")

	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|URL [-width 60 -height 80] [-algorithm floyd-steinberg] [-out outdir]",
			filepath.Base(os.Args[0]))
	}

	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		if err := loaded.Validate(); err != nil {
			log.Fatalf("invalid config: %v", err)
		}
		cfg = loaded

		// Config file values apply wherever the user left the flag at
		// its default.
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["out"] {
			outDir = cfg.Output.OutputDir
		}
		if !set["width"] {
			width = cfg.Grid.Width
		}
		if !set["height"] {
			height = cfg.Grid.Height
		}
		if !set["algorithm"] {
			algorithm = cfg.Algorithm.Name
		}
		if !set["threshold"] {
			threshold = cfg.Algorithm.Threshold
		}
		if !set["strength"] {
			strength = cfg.Algorithm.Strength
		}
		if !set["blocksize"] {
			blockSize = cfg.Algorithm.BlockSize
		}
		if !set["sensitivity"] {
			sensitivity = cfg.Algorithm.Sensitivity
		}
		if !set["invert"] {
			invert = cfg.Algorithm.InvertPattern
		}
		if !set["contrast"] {
			contrast = cfg.Tone.Contrast
		}
		if !set["brightness"] {
			brightness = cfg.Tone.Brightness
		}
		if !set["preview"] {
			preview = cfg.Output.WritePreview
		}
		if !set["cellsize"] {
			cellSize = cfg.Render.CellSize
		}
		if !set["format"] {
			format = cfg.Render.Format
		}
		if !set["quality"] {
			quality = cfg.Render.Quality
		}
		if !set["lossless"] {
			lossless = cfg.Render.Lossless
		}
	}

	alg, err := preset.Parse(algorithm)
	if err != nil {
		log.Fatalf("unknown algorithm %q (known: %v)", algorithm, binarize.Algorithms())
	}
	params := buildParams(alg, threshold, strength, blockSize, sensitivity)

	crop := pattern.FullCrop()
	if cropSpec != "" {
		crop, err = parseCrop(cropSpec)
		if err != nil {
			log.Fatalf("invalid -crop: %v", err)
		}
	}

	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	conv := crochetpattern.New()

	if !strings.HasPrefix(in, "http") && !utils.IsImageFile(in) {
		log.Warnf("%s does not look like an image file, trying anyway", in)
	}
	img, err := conv.LoadImage(in)
	if err != nil {
		log.Fatalf("loading image: %v", err)
	}
	bounds := img.Bounds()
	log.WithFields(logrus.Fields{
		"source": in,
		"size":   fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
	}).Info("loaded source image")

	dims := pattern.GridDimensions{Width: width, Height: height}
	tone := pattern.ToneParams{Contrast: contrast, Brightness: brightness}

	grid, err := conv.Convert(img, crop, dims, tone, params, invert)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	log.WithFields(logrus.Fields{
		"algorithm": alg,
		"grid":      fmt.Sprintf("%dx%d", dims.Width, dims.Height),
		"filled":    grid.Count(),
	}).Info("converted pattern")

	csvPath := filepath.Join(outDir, export.Filename(dims))
	f, err := os.Create(csvPath)
	if err != nil {
		log.Fatalf("creating %s: %v", csvPath, err)
	}
	if err := export.Encode(f, grid); err != nil {
		f.Close()
		log.Fatalf("writing %s: %v", csvPath, err)
	}
	f.Close()
	if info, err := os.Stat(csvPath); err == nil {
		log.Infof("wrote %s (%s)", csvPath, utils.FormatFileSize(info.Size()))
	}

	if preview {
		previewPath := utils.PreviewFilename(in, outDir, format)
		conv = crochetpattern.NewWithRenderOptions(renderOptions(cellSize))
		if err := conv.SavePreview(grid, previewPath, format, quality, lossless); err != nil {
			log.Errorf("writing preview: %v", err)
		} else {
			log.Infof("wrote %s", previewPath)
		}
	}
}

// buildParams constructs the parameter variant for the chosen algorithm
// from the flag values; each variant picks up only the flags it consults.
func buildParams(alg binarize.Algorithm, threshold, strength float64, blockSize int, sensitivity float64) binarize.Params {
	switch alg {
	case binarize.Threshold:
		return binarize.ThresholdParams{Threshold: threshold}
	case binarize.Otsu:
		return binarize.OtsuParams{}
	case binarize.FloydSteinberg:
		return binarize.FloydSteinbergParams{Threshold: threshold, Strength: strength}
	case binarize.Atkinson:
		return binarize.AtkinsonParams{Threshold: threshold, Strength: strength}
	case binarize.Bayer:
		return binarize.BayerParams{Threshold: threshold, Strength: strength}
	case binarize.Adaptive:
		return binarize.AdaptiveParams{Threshold: threshold, BlockSize: blockSize}
	case binarize.Sobel:
		return binarize.SobelParams{Sensitivity: sensitivity}
	default:
		// preset.Parse already rejected unknown identifiers
		panic(fmt.Sprintf("unhandled algorithm %q", alg))
	}
}

// parseCrop parses "x1,y1,x2,y2" normalized fractions.
func parseCrop(spec string) (pattern.CropRect, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return pattern.CropRect{}, fmt.Errorf("want 4 comma-separated fractions, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return pattern.CropRect{}, fmt.Errorf("parsing %q: %w", p, err)
		}
		vals[i] = v
	}
	return pattern.CropRect{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}.Clamp(), nil
}

func renderOptions(cellSize int) render.Options {
	opts := render.DefaultOptions()
	opts.CellSize = cellSize
	return opts
}
