package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Label file columns (Kaggle airlines.csv / airports.csv).
const (
	labelKeyCol     = "IATA_CODE"
	airlineLabelCol = "AIRLINE"
	airportLabelCol = "AIRPORT"
)

// Clean filters out cancelled and diverted flights, drops rows missing the
// core numeric fields and left-joins the human-readable labels. Codes that
// do not resolve keep their row and get a blank label.
func Clean(t Tables) (dataframe.DataFrame, error) {
	df := t.Flights
	if df.Nrow() == 0 {
		return df, nil
	}

	if HasColumn(df, ColCancelled) {
		df = df.Filter(dataframe.F{Colname: ColCancelled, Comparator: series.Eq, Comparando: 0})
	}
	if HasColumn(df, ColDiverted) {
		df = df.Filter(dataframe.F{Colname: ColDiverted, Comparator: series.Eq, Comparando: 0})
	}
	if df.Err != nil {
		return df, fmt.Errorf("failed to filter cancelled/diverted flights: %w", df.Err)
	}

	// Delay analysis needs these two fields; rows without them are useless.
	for _, col := range []string{ColArrivalDelay, ColScheduledDeparture} {
		if HasColumn(df, col) {
			df = dropNA(df, col)
		}
	}

	if df.Nrow() == 0 {
		return df, nil
	}

	df = joinAirlineLabels(df, t.Airlines)
	df = joinAirportLabels(df, t.Airports, ColOrigin, ColOriginName)
	df = joinAirportLabels(df, t.Airports, ColDestination, ColDestinationName)
	if df.Err != nil {
		return df, fmt.Errorf("failed to join label tables: %w", df.Err)
	}

	return df, nil
}

func dropNA(df dataframe.DataFrame, col string) dataframe.DataFrame {
	return df.Filter(dataframe.F{
		Colname:    col,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool { return !el.IsNA() },
	})
}

func joinAirlineLabels(df, airlines dataframe.DataFrame) dataframe.DataFrame {
	if !HasColumn(df, ColAirline) || !HasColumn(airlines, labelKeyCol) {
		return df
	}
	labels := airlines.
		Select([]string{labelKeyCol, airlineLabelCol}).
		Rename(ColAirlineName, airlineLabelCol).
		Rename(ColAirline, labelKeyCol)

	joined := df.LeftJoin(labels, ColAirline)
	if joined.Err != nil {
		return joined
	}
	return blankMissingLabels(joined, ColAirlineName)
}

func joinAirportLabels(df, airports dataframe.DataFrame, keyCol, nameCol string) dataframe.DataFrame {
	if !HasColumn(df, keyCol) || !HasColumn(airports, labelKeyCol) {
		return df
	}
	labels := airports.
		Select([]string{labelKeyCol, airportLabelCol}).
		Rename(nameCol, airportLabelCol).
		Rename(keyCol, labelKeyCol)

	joined := df.LeftJoin(labels, keyCol)
	if joined.Err != nil {
		return joined
	}
	return blankMissingLabels(joined, nameCol)
}

// blankMissingLabels rewrites NA label cells to empty strings so unresolved
// codes surface as blanks instead of "NaN" text.
func blankMissingLabels(df dataframe.DataFrame, col string) dataframe.DataFrame {
	if !HasColumn(df, col) {
		return df
	}
	src := df.Col(col)
	vals := make([]string, src.Len())
	for i := 0; i < src.Len(); i++ {
		el := src.Elem(i)
		if el.IsNA() {
			vals[i] = ""
			continue
		}
		vals[i] = el.String()
	}
	return df.Mutate(series.New(vals, series.String, col))
}
