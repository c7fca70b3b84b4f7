// Package analysis applies page filters and computes the aggregations and
// hypothesis statistics the dashboard pages and the poster share.
package analysis

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
)

// Filters narrows the derived table before aggregation. Empty slices mean
// "everything", matching the dashboard's multiselect semantics.
type Filters struct {
	Months       []int
	Airlines     []string
	Origins      []string
	Destinations []string
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return len(f.Months) == 0 && len(f.Airlines) == 0 &&
		len(f.Origins) == 0 && len(f.Destinations) == 0
}

// Apply returns the rows matching all active filters.
func Apply(df dataframe.DataFrame, f Filters) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	if len(f.Months) > 0 && dataset.HasColumn(df, dataset.ColMonth) {
		df = df.Filter(dataframe.F{Colname: dataset.ColMonth, Comparator: series.In, Comparando: f.Months})
	}
	if len(f.Airlines) > 0 && dataset.HasColumn(df, dataset.ColAirline) {
		df = df.Filter(dataframe.F{Colname: dataset.ColAirline, Comparator: series.In, Comparando: f.Airlines})
	}
	if len(f.Origins) > 0 && dataset.HasColumn(df, dataset.ColOrigin) {
		df = df.Filter(dataframe.F{Colname: dataset.ColOrigin, Comparator: series.In, Comparando: f.Origins})
	}
	if len(f.Destinations) > 0 && dataset.HasColumn(df, dataset.ColDestination) {
		df = df.Filter(dataframe.F{Colname: dataset.ColDestination, Comparator: series.In, Comparando: f.Destinations})
	}
	return df
}

// Options lists the distinct filter values present in the table, for the
// page filter controls.
type Options struct {
	Months       []int    `json:"months"`
	Airlines     []string `json:"airlines"`
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}

// FilterOptions collects the sorted distinct values per filterable column.
func FilterOptions(df dataframe.DataFrame) Options {
	return Options{
		Months:       distinctInts(df, dataset.ColMonth),
		Airlines:     distinctStrings(df, dataset.ColAirline),
		Origins:      distinctStrings(df, dataset.ColOrigin),
		Destinations: distinctStrings(df, dataset.ColDestination),
	}
}

func columnFloats(df dataframe.DataFrame, col string) []float64 {
	if !dataset.HasColumn(df, col) {
		return nil
	}
	return df.Col(col).Float()
}

func columnStrings(df dataframe.DataFrame, col string) []string {
	if !dataset.HasColumn(df, col) {
		return nil
	}
	return df.Col(col).Records()
}
