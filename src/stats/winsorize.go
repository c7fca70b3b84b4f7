package stats

import (
	"math"
	"sort"
)

// Winsorize clamps values to the pct-th and (100-pct)-th percentile of the
// input, expressed as order statistics. Clamping to order statistics (the
// ranks just inside the cut) makes the transform idempotent: running it a
// second time on already-clipped data returns the same values. NaN values
// are ignored for the bounds and passed through unchanged.
func Winsorize(values []float64, pct float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	lo, hi, ok := WinsorBounds(values, pct)
	if !ok {
		return out
	}

	for i, v := range out {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			out[i] = lo
		} else if v > hi {
			out[i] = hi
		}
	}
	return out
}

// WinsorBounds returns the clamp bounds for Winsorize. ok is false when
// pct is not in (0, 50) or there are no finite values.
func WinsorBounds(values []float64, pct float64) (lo, hi float64, ok bool) {
	if pct <= 0 || pct >= 50 {
		return 0, 0, false
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	sort.Float64s(finite)

	p := pct / 100
	n := float64(len(finite) - 1)
	loIdx := int(math.Ceil(p * n))
	hiIdx := int(math.Floor((1 - p) * n))
	if loIdx > hiIdx {
		loIdx, hiIdx = hiIdx, loIdx
	}
	return finite[loIdx], finite[hiIdx], true
}
