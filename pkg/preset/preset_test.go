package preset

import (
	"errors"
	"testing"

	"github.com/JMRLudan/CrochetPattern/pkg/binarize"
	"github.com/JMRLudan/CrochetPattern/pkg/pattern"
)

func TestForCoversEveryAlgorithm(t *testing.T) {
	for _, alg := range binarize.Algorithms() {
		entry, err := For(alg)
		if err != nil {
			t.Errorf("For(%q) failed: %v", alg, err)
			continue
		}
		if entry.Params == nil {
			t.Errorf("For(%q) returned nil params", alg)
			continue
		}
		if entry.Params.Algorithm() != alg {
			t.Errorf("For(%q) returned params for %q", alg, entry.Params.Algorithm())
		}
		if entry.Tone != pattern.IdentityTone() {
			t.Errorf("For(%q) default tone = %+v, want identity", alg, entry.Tone)
		}
	}
}

func TestForUnknownAlgorithm(t *testing.T) {
	_, err := For(binarize.Algorithm("median-cut"))
	if !errors.Is(err, pattern.ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestParse(t *testing.T) {
	alg, err := Parse("floyd-steinberg")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if alg != binarize.FloydSteinberg {
		t.Errorf("Parse = %q, want %q", alg, binarize.FloydSteinberg)
	}

	if _, err := Parse("nearest"); !errors.Is(err, pattern.ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestDefaultsWithinDocumentedRanges(t *testing.T) {
	entry, err := For(binarize.Adaptive)
	if err != nil {
		t.Fatal(err)
	}
	adaptive, ok := entry.Params.(binarize.AdaptiveParams)
	if !ok {
		t.Fatalf("adaptive defaults have type %T", entry.Params)
	}
	if adaptive.BlockSize%2 == 0 || adaptive.BlockSize < 3 || adaptive.BlockSize > 31 {
		t.Errorf("default block size %d outside odd 3-31", adaptive.BlockSize)
	}

	entry, err = For(binarize.Sobel)
	if err != nil {
		t.Fatal(err)
	}
	sobel, ok := entry.Params.(binarize.SobelParams)
	if !ok {
		t.Fatalf("sobel defaults have type %T", entry.Params)
	}
	if sobel.Sensitivity < 10 || sobel.Sensitivity > 100 {
		t.Errorf("default sensitivity %v outside 10-100", sobel.Sensitivity)
	}
}
