package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LateThresholdMinutes is the arrival delay at which a flight counts as late.
const LateThresholdMinutes = 15.0

// Derive appends the computed analysis columns. Every derivation is a pure
// function of a single row, guarded on the source column being present.
func Derive(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	if HasColumn(df, ColScheduledDeparture) {
		df = df.Mutate(depHourSeries(df.Col(ColScheduledDeparture)))
	}
	if HasColumn(df, ColArrivalDelay) {
		df = df.Mutate(thresholdSeries(df.Col(ColArrivalDelay), LateThresholdMinutes, ColIsLate15))
	}
	if HasColumn(df, ColWeatherDelay) {
		df = df.Mutate(positiveSeries(df.Col(ColWeatherDelay), ColHasWeatherDelay))
	}
	if HasColumn(df, ColLateAircraftDelay) {
		df = df.Mutate(positiveSeries(df.Col(ColLateAircraftDelay), ColHasLateAircraftDelay))
	}
	return df
}

// depHourSeries maps an hhmm scheduled departure to an hour in [0, 23].
// Midnight is encoded as 2400 in the source data, hence the upper clamp.
func depHourSeries(s series.Series) series.Series {
	hours := make([]int, s.Len())
	for i, v := range s.Float() {
		h := int(v) / 100
		if h < 0 {
			h = 0
		}
		if h > 23 {
			h = 23
		}
		hours[i] = h
	}
	return series.New(hours, series.Int, ColDepHour)
}

// thresholdSeries marks rows whose value is at or above the threshold.
// NA counts as not late.
func thresholdSeries(s series.Series, threshold float64, name string) series.Series {
	flags := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		flags[i] = !el.IsNA() && el.Float() >= threshold
	}
	return series.New(flags, series.Bool, name)
}

// positiveSeries marks rows with a strictly positive value. The cause
// columns are only filled for delayed flights, so NA counts as 0.
func positiveSeries(s series.Series, name string) series.Series {
	flags := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		el := s.Elem(i)
		flags[i] = !el.IsNA() && el.Float() > 0
	}
	return series.New(flags, series.Bool, name)
}
