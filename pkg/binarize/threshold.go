package binarize

import "math"

// ThresholdParams parameterizes the simple global threshold: a cell is
// filled iff its luminance is strictly below Threshold.
type ThresholdParams struct {
	Threshold float64 `json:"threshold"`
}

func (ThresholdParams) Algorithm() Algorithm { return Threshold }

func (p ThresholdParams) apply(field []float64, width, height int) []int {
	bits := make([]int, len(field))
	for i, v := range field {
		if v < p.Threshold {
			bits[i] = 1
		}
	}
	return bits
}

// OtsuParams parameterizes the automatic threshold. It carries no fields:
// the split value is computed from the luminance histogram of the whole
// field, then applied as a simple threshold.
type OtsuParams struct{}

func (OtsuParams) Algorithm() Algorithm { return Otsu }

func (OtsuParams) apply(field []float64, width, height int) []int {
	t := otsuThreshold(field)
	return ThresholdParams{Threshold: t}.apply(field, width, height)
}

// otsuThreshold picks the split maximizing the between-class variance
// wB*wF*(mB-mF)^2 over a 256-bin histogram of the rounded luminances. The
// background class for split t is the bins below t, so the returned value
// plugs directly into the strict less-than threshold rule. Ties resolve to
// the first maximum while scanning t ascending.
func otsuThreshold(field []float64) float64 {
	var hist [256]float64
	for _, v := range field {
		bin := int(math.Round(v))
		if bin < 0 {
			bin = 0
		}
		if bin > 255 {
			bin = 255
		}
		hist[bin]++
	}

	total := float64(len(field))
	sum := 0.0
	for i := range hist {
		hist[i] /= total
		sum += float64(i) * hist[i]
	}

	var (
		wB, sumB float64
		best     float64
		level    float64
	)
	for t := 0; t < 256; t++ {
		if wB > 0 && wB < 1 {
			mB := sumB / wB
			mF := (sum - sumB) / (1 - wB)
			between := wB * (1 - wB) * (mB - mF) * (mB - mF)
			if between > best {
				best = between
				level = float64(t)
			}
		}
		wB += hist[t]
		sumB += float64(t) * hist[t]
	}
	return level
}
