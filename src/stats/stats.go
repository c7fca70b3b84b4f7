// Package stats holds the statistical primitives for the delay analysis:
// winsorization, trends, one-way ANOVA and correlation. Frame-aware code
// lives in src/analysis; everything here works on plain float slices.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Trend is a fitted least-squares line.
type Trend struct {
	Slope     float64
	Intercept float64
	R2        float64
	N         int
	OK        bool
}

// LinearTrend fits y = intercept + slope*x over the finite pairs.
func LinearTrend(xs, ys []float64) Trend {
	fx, fy := finitePairs(xs, ys)
	if len(fx) < 2 || allEqual(fx) {
		return Trend{}
	}

	intercept, slope := stat.LinearRegression(fx, fy, nil, false)
	r2 := stat.RSquared(fx, fy, nil, intercept, slope)
	if math.IsNaN(slope) || math.IsNaN(intercept) {
		return Trend{}
	}
	if math.IsNaN(r2) {
		r2 = 0
	}
	return Trend{Slope: slope, Intercept: intercept, R2: r2, N: len(fx), OK: true}
}

// ANOVA is the result of a one-way analysis of variance.
type ANOVA struct {
	F          float64
	P          float64
	EffectSize float64 // eta squared
	DFBetween  int
	DFWithin   int
	OK         bool
}

// OneWayANOVA tests whether the group means differ. Groups with no finite
// observations are skipped; at least two non-empty groups are required.
func OneWayANOVA(groups map[int][]float64) ANOVA {
	type groupStat struct {
		n    int
		mean float64
		vari float64
	}

	var gs []groupStat
	var total int
	var sum float64
	for _, vals := range groups {
		finite := finiteOnly(vals)
		if len(finite) == 0 {
			continue
		}
		gs = append(gs, groupStat{
			n:    len(finite),
			mean: stat.Mean(finite, nil),
			vari: stat.Variance(finite, nil),
		})
		total += len(finite)
		for _, v := range finite {
			sum += v
		}
	}
	if len(gs) < 2 || total <= len(gs) {
		return ANOVA{}
	}

	overall := sum / float64(total)
	var ssBetween, ssWithin float64
	for _, g := range gs {
		d := g.mean - overall
		ssBetween += float64(g.n) * d * d
		if g.n > 1 {
			ssWithin += g.vari * float64(g.n-1)
		}
	}

	dfBetween := len(gs) - 1
	dfWithin := total - len(gs)
	if dfWithin <= 0 || ssWithin <= 0 {
		return ANOVA{}
	}

	f := (ssBetween / float64(dfBetween)) / (ssWithin / float64(dfWithin))
	res := ANOVA{
		F:         f,
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		OK:        true,
	}
	if tot := ssBetween + ssWithin; tot > 0 {
		res.EffectSize = ssBetween / tot
	}

	dist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	res.P = dist.Survival(f)
	return res
}

// Correlation returns the Pearson correlation over the finite pairs.
func Correlation(xs, ys []float64) (float64, bool) {
	fx, fy := finitePairs(xs, ys)
	if len(fx) < 2 {
		return 0, false
	}
	r := stat.Correlation(fx, fy, nil)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

// Mean averages the finite values; 0 for an empty slice.
func Mean(values []float64) float64 {
	finite := finiteOnly(values)
	if len(finite) == 0 {
		return 0
	}
	return stat.Mean(finite, nil)
}

// StdDev is the sample standard deviation of the finite values.
func StdDev(values []float64) float64 {
	finite := finiteOnly(values)
	if len(finite) < 2 {
		return 0
	}
	return stat.StdDev(finite, nil)
}

// Median returns the middle finite value, interpolating between the two
// central ones for even counts.
func Median(values []float64) float64 {
	finite := finiteOnly(values)
	if len(finite) == 0 {
		return 0
	}
	sort.Float64s(finite)
	n := len(finite)
	if n%2 == 0 {
		return (finite[n/2-1] + finite[n/2]) / 2
	}
	return finite[n/2]
}

// Quantile returns the q-th quantile (0..1) with linear interpolation
// between closest ranks, matching the convention the aggregations use for
// hub thresholds.
func Quantile(values []float64, q float64) float64 {
	finite := finiteOnly(values)
	if len(finite) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	sort.Float64s(finite)

	idx := q * float64(len(finite)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return finite[lower]
	}
	w := idx - float64(lower)
	return finite[lower]*(1-w) + finite[upper]*w
}

func finiteOnly(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

func finitePairs(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	fx := make([]float64, 0, n)
	fy := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	return fx, fy
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
