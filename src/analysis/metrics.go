package analysis

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/stats"
)

// KPIs are the headline numbers on the introduction page.
type KPIs struct {
	Flights        int     `json:"flights"`
	LatePct        float64 `json:"late_pct"`
	MeanDepDelay   float64 `json:"mean_dep_delay"`
	MeanArrDelay   float64 `json:"mean_arr_delay"`
	Airlines       int     `json:"airlines"`
	Origins        int     `json:"origins"`
	AvgMissingPct  float64 `json:"avg_missing_pct"`
	LoadedRowLimit int     `json:"loaded_row_limit,omitempty"`
}

// Metrics computes the KPI block over the filtered table.
func Metrics(df dataframe.DataFrame) KPIs {
	n := df.Nrow()
	if n == 0 {
		return KPIs{}
	}

	late := columnFloats(df, dataset.ColIsLate15)
	var lateHits int
	for _, v := range late {
		if v > 0 {
			lateHits++
		}
	}

	missing := MissingPerColumn(df)
	var missingSum float64
	for _, m := range missing {
		missingSum += m.Pct
	}
	avgMissing := 0.0
	if len(missing) > 0 {
		avgMissing = missingSum / float64(len(missing))
	}

	return KPIs{
		Flights:       n,
		LatePct:       100 * float64(lateHits) / float64(n),
		MeanDepDelay:  stats.Mean(columnFloats(df, dataset.ColDepartureDelay)),
		MeanArrDelay:  stats.Mean(columnFloats(df, dataset.ColArrivalDelay)),
		Airlines:      len(distinctStrings(df, dataset.ColAirline)),
		Origins:       len(distinctStrings(df, dataset.ColOrigin)),
		AvgMissingPct: avgMissing,
	}
}

// ColumnMissing is the missing-value share of one column.
type ColumnMissing struct {
	Column string  `json:"column"`
	Pct    float64 `json:"pct"`
}

// MissingPerColumn reports the NA percentage per column, worst first.
func MissingPerColumn(df dataframe.DataFrame) []ColumnMissing {
	n := df.Nrow()
	if n == 0 {
		return nil
	}

	out := make([]ColumnMissing, 0, len(df.Names()))
	for _, name := range df.Names() {
		col := df.Col(name)
		var missing int
		for i := 0; i < col.Len(); i++ {
			if col.Elem(i).IsNA() {
				missing++
			}
		}
		out = append(out, ColumnMissing{
			Column: name,
			Pct:    100 * float64(missing) / float64(n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pct != out[j].Pct {
			return out[i].Pct > out[j].Pct
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// ColumnProfile describes one numeric column on the data-audit panel.
type ColumnProfile struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// DescribeNumeric profiles the delay and schedule columns.
func DescribeNumeric(df dataframe.DataFrame) []ColumnProfile {
	cols := []string{
		dataset.ColDepartureDelay,
		dataset.ColArrivalDelay,
		dataset.ColWeatherDelay,
		dataset.ColLateAircraftDelay,
		dataset.ColScheduledDeparture,
	}

	var out []ColumnProfile
	for _, name := range cols {
		values := finite(columnFloats(df, name))
		if len(values) == 0 {
			continue
		}
		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		out = append(out, ColumnProfile{
			Column: name,
			Count:  len(values),
			Mean:   stats.Mean(values),
			Std:    stats.StdDev(values),
			Min:    min,
			Median: stats.Median(values),
			Max:    max,
		})
	}
	return out
}

// HeadRecords returns the header plus the first n data rows, for the raw
// data preview.
func HeadRecords(df dataframe.DataFrame, n int) [][]string {
	records := df.Records()
	if len(records) == 0 {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if len(records) > n+1 {
		records = records[:n+1]
	}
	return records
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
