// Package preset holds the static defaults table used to initialize caller
// controls when the selected algorithm changes. It is a flat mapping from
// algorithm identifier to default parameters; the pipeline itself never
// consults it.
package preset

import (
	"fmt"

	"github.com/JMRLudan/CrochetPattern/pkg/binarize"
	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

// Entry is one row of the defaults table: the algorithm's default parameter
// variant plus the tone correction to start from.
type Entry struct {
	Params binarize.Params
	Tone   pattern.ToneParams
}

var table = map[binarize.Algorithm]Entry{
	binarize.Threshold: {
		Params: binarize.ThresholdParams{Threshold: 128},
		Tone:   pattern.IdentityTone(),
	},
	binarize.Otsu: {
		Params: binarize.OtsuParams{},
		Tone:   pattern.IdentityTone(),
	},
	binarize.FloydSteinberg: {
		Params: binarize.FloydSteinbergParams{Threshold: 128, Strength: 100},
		Tone:   pattern.IdentityTone(),
	},
	binarize.Atkinson: {
		Params: binarize.AtkinsonParams{Threshold: 128, Strength: 100},
		Tone:   pattern.IdentityTone(),
	},
	binarize.Bayer: {
		Params: binarize.BayerParams{Threshold: 128, Strength: 100},
		Tone:   pattern.IdentityTone(),
	},
	binarize.Adaptive: {
		Params: binarize.AdaptiveParams{Threshold: 128, BlockSize: 15},
		Tone:   pattern.IdentityTone(),
	},
	binarize.Sobel: {
		Params: binarize.SobelParams{Sensitivity: 50},
		Tone:   pattern.IdentityTone(),
	},
}

// For returns the defaults for an algorithm identifier.
func For(alg binarize.Algorithm) (Entry, error) {
	entry, ok := table[alg]
	if !ok {
		return Entry{}, fmt.Errorf("preset %q: %w", alg, pattern.ErrUnsupportedAlgorithm)
	}
	return entry, nil
}

// Parse maps a string identifier onto a known algorithm.
func Parse(id string) (binarize.Algorithm, error) {
	alg := binarize.Algorithm(id)
	if _, ok := table[alg]; !ok {
		return "", fmt.Errorf("algorithm %q: %w", id, pattern.ErrUnsupportedAlgorithm)
	}
	return alg, nil
}
