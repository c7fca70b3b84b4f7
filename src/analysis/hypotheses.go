package analysis

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/stats"
)

// WinsorizeDelays clamps the arrival and departure delay columns at the
// pct / 100-pct percentiles. Used by the statistics page and the poster;
// the canonical table is never modified.
func WinsorizeDelays(df dataframe.DataFrame, pct float64) dataframe.DataFrame {
	if df.Nrow() == 0 || pct <= 0 {
		return df
	}
	for _, col := range []string{dataset.ColArrivalDelay, dataset.ColDepartureDelay} {
		if !dataset.HasColumn(df, col) {
			continue
		}
		clipped := stats.Winsorize(df.Col(col).Float(), pct)
		df = df.Mutate(series.New(clipped, series.Float, col))
	}
	return df
}

// TrendByHour fits arrival delay against scheduled departure hour.
func TrendByHour(df dataframe.DataFrame) stats.Trend {
	return stats.LinearTrend(
		columnFloats(df, dataset.ColDepHour),
		columnFloats(df, dataset.ColArrivalDelay),
	)
}

// ControlledTrendByHour repeats the trend on residuals after removing the
// (month, weekday) group means, separating the daily pattern from seasonal
// and weekday effects.
func ControlledTrendByHour(df dataframe.DataFrame) stats.Trend {
	hours := columnFloats(df, dataset.ColDepHour)
	arr := columnFloats(df, dataset.ColArrivalDelay)
	months := columnFloats(df, dataset.ColMonth)
	weekdays := columnFloats(df, dataset.ColDayOfWeek)
	if len(hours) == 0 || len(arr) == 0 || len(months) == 0 || len(weekdays) == 0 {
		return stats.Trend{}
	}

	type key struct{ month, weekday int }
	sums := map[key]float64{}
	counts := map[key]int{}
	for i := range arr {
		if i >= len(months) || i >= len(weekdays) || math.IsNaN(arr[i]) {
			continue
		}
		k := key{int(months[i]), int(weekdays[i])}
		sums[k] += arr[i]
		counts[k]++
	}

	residuals := make([]float64, len(arr))
	for i := range arr {
		if i >= len(months) || i >= len(weekdays) || math.IsNaN(arr[i]) {
			residuals[i] = math.NaN()
			continue
		}
		k := key{int(months[i]), int(weekdays[i])}
		residuals[i] = arr[i] - sums[k]/float64(counts[k])
	}

	return stats.LinearTrend(hours, residuals)
}

// ANOVAByHour tests whether mean arrival delay differs across departure
// hours.
func ANOVAByHour(df dataframe.DataFrame) stats.ANOVA {
	hours := columnFloats(df, dataset.ColDepHour)
	arr := columnFloats(df, dataset.ColArrivalDelay)
	if len(hours) == 0 || len(arr) == 0 {
		return stats.ANOVA{}
	}

	groups := map[int][]float64{}
	for i, h := range hours {
		if i >= len(arr) {
			break
		}
		hour := int(h)
		groups[hour] = append(groups[hour], arr[i])
	}
	return stats.OneWayANOVA(groups)
}

// DepArrCorrelation is the Pearson correlation between departure and
// arrival delay.
func DepArrCorrelation(df dataframe.DataFrame) (float64, bool) {
	return stats.Correlation(
		columnFloats(df, dataset.ColDepartureDelay),
		columnFloats(df, dataset.ColArrivalDelay),
	)
}

// ScatterPoints samples up to max (x, y) pairs from two columns with a
// fixed stride, keeping page and poster rendering fast and reproducible.
func ScatterPoints(df dataframe.DataFrame, xCol, yCol string, max int) (xs, ys []float64) {
	allX := columnFloats(df, xCol)
	allY := columnFloats(df, yCol)
	n := len(allX)
	if len(allY) < n {
		n = len(allY)
	}
	if n == 0 {
		return nil, nil
	}

	stride := 1
	if max > 0 && n > max {
		stride = n / max
	}
	for i := 0; i < n; i += stride {
		if math.IsNaN(allX[i]) || math.IsNaN(allY[i]) {
			continue
		}
		xs = append(xs, allX[i])
		ys = append(ys, allY[i])
	}
	return xs, ys
}
