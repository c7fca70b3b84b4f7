package analysis

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
)

func testFrame(t *testing.T, cols ...series.Series) dataframe.DataFrame {
	t.Helper()
	df := dataframe.New(cols...)
	require.NoError(t, df.Error())
	return df
}

func TestApplyFilters(t *testing.T) {
	df := testFrame(t,
		series.New([]int{1, 1, 2, 3}, series.Int, dataset.ColMonth),
		series.New([]string{"AA", "DL", "AA", "WN"}, series.String, dataset.ColAirline),
		series.New([]string{"ATL", "LAX", "ATL", "ORD"}, series.String, dataset.ColOrigin),
		series.New([]string{"LAX", "ATL", "ORD", "ATL"}, series.String, dataset.ColDestination),
	)

	out := Apply(df, Filters{Months: []int{1}, Airlines: []string{"AA"}})
	require.Equal(t, 1, out.Nrow())
	assert.Equal(t, "ATL", out.Col(dataset.ColOrigin).Elem(0).String())

	assert.Equal(t, 4, Apply(df, Filters{}).Nrow())
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{Origins: []string{"ATL"}}.IsZero())
}

func TestFilterOptions(t *testing.T) {
	df := testFrame(t,
		series.New([]int{3, 1, 3, 2}, series.Int, dataset.ColMonth),
		series.New([]string{"DL", "AA", "DL", ""}, series.String, dataset.ColAirline),
		series.New([]string{"LAX", "ATL", "ATL", "ORD"}, series.String, dataset.ColOrigin),
		series.New([]string{"ATL", "LAX", "ORD", "LAX"}, series.String, dataset.ColDestination),
	)

	opts := FilterOptions(df)
	assert.Equal(t, []int{1, 2, 3}, opts.Months)
	assert.Equal(t, []string{"AA", "DL"}, opts.Airlines, "blank codes are not offered")
	assert.Equal(t, []string{"ATL", "LAX", "ORD"}, opts.Origins)
	assert.Equal(t, []string{"ATL", "LAX", "ORD"}, opts.Destinations)
}

func TestHourlySummary(t *testing.T) {
	df := testFrame(t,
		series.New([]int{6, 6, 6, 18, 18}, series.Int, dataset.ColDepHour),
		series.New([]float64{0, 10, 20, 30, 50}, series.Float, dataset.ColArrivalDelay),
		series.New([]bool{true, false, false, true, true}, series.Bool, dataset.ColHasWeatherDelay),
		series.New([]bool{false, false, false, false, true}, series.Bool, dataset.ColHasLateAircraftDelay),
	)

	rows := HourlySummary(df)
	require.Len(t, rows, 2)

	six := rows[0]
	assert.Equal(t, 6, six.DepHour)
	assert.Equal(t, 3, six.Flights)
	assert.InDelta(t, 10.0, six.MeanArrDelay, 1e-9)
	assert.InDelta(t, 10.0, six.MedianArrDelay, 1e-9)
	assert.InDelta(t, 100.0/3, six.WeatherSharePct, 1e-9)
	assert.InDelta(t, 0.0, six.LateAircraftSharePct, 1e-9)

	evening := rows[1]
	assert.Equal(t, 18, evening.DepHour)
	assert.InDelta(t, 40.0, evening.MeanArrDelay, 1e-9)
	assert.InDelta(t, 100.0, evening.WeatherSharePct, 1e-9)
	assert.InDelta(t, 50.0, evening.LateAircraftSharePct, 1e-9)
}

func TestHourlySummaryEmpty(t *testing.T) {
	df := testFrame(t, series.New([]float64{1}, series.Float, dataset.ColArrivalDelay))
	assert.Nil(t, HourlySummary(df))
}

func TestAirlineRanking(t *testing.T) {
	df := testFrame(t,
		series.New([]string{"AA", "AA", "AA", "DL", "DL", "WN"}, series.String, dataset.ColAirline),
		series.New([]string{
			"American Airlines Inc.", "American Airlines Inc.", "American Airlines Inc.",
			"Delta Air Lines Inc.", "Delta Air Lines Inc.", "",
		}, series.String, dataset.ColAirlineName),
		series.New([]float64{10, 20, 30, 5, 5, 99}, series.Float, dataset.ColArrivalDelay),
	)

	rows := AirlineRanking(df, 2, 10)
	require.Len(t, rows, 2, "airlines under the flight minimum are dropped")

	assert.Equal(t, "AA", rows[0].Code)
	assert.Equal(t, "American Airlines Inc.", rows[0].Name)
	assert.InDelta(t, 20.0, rows[0].AvgDelay, 1e-9)
	assert.Equal(t, 3, rows[0].Flights)

	assert.Equal(t, "DL", rows[1].Code)
	assert.InDelta(t, 5.0, rows[1].AvgDelay, 1e-9)
}

func TestAirlineRankingNameFallsBackToCode(t *testing.T) {
	df := testFrame(t,
		series.New([]string{"ZZ", "ZZ"}, series.String, dataset.ColAirline),
		series.New([]string{"", ""}, series.String, dataset.ColAirlineName),
		series.New([]float64{1, 3}, series.Float, dataset.ColArrivalDelay),
	)

	rows := AirlineRanking(df, 1, 10)
	require.Len(t, rows, 1)
	assert.Equal(t, "ZZ", rows[0].Name)
}

func TestAirportRankingFlagsHubs(t *testing.T) {
	origins := []string{"ATL", "ATL", "ATL", "ATL", "LAX", "LAX", "ORD"}
	names := []string{
		"Hartsfield-Jackson", "Hartsfield-Jackson", "Hartsfield-Jackson", "Hartsfield-Jackson",
		"Los Angeles Intl", "Los Angeles Intl", "O'Hare Intl",
	}
	delays := []float64{10, 10, 10, 10, 30, 30, 50}
	df := testFrame(t,
		series.New(origins, series.String, dataset.ColOrigin),
		series.New(names, series.String, dataset.ColOriginName),
		series.New(delays, series.Float, dataset.ColArrivalDelay),
	)

	rows := AirportRanking(df, 1, 10)
	require.Len(t, rows, 3)

	byCode := map[string]RankRow{}
	for _, r := range rows {
		byCode[r.Code] = r
	}
	assert.True(t, byCode["ATL"].Hub, "busiest origin is a hub")
	assert.False(t, byCode["LAX"].Hub)
	assert.False(t, byCode["ORD"].Hub)

	// worst average first
	assert.Equal(t, "ORD", rows[0].Code)
}

func TestRouteTable(t *testing.T) {
	df := testFrame(t,
		series.New([]string{"ATL", "ATL", "ATL", "LAX"}, series.String, dataset.ColOrigin),
		series.New([]string{"Hartsfield-Jackson", "Hartsfield-Jackson", "Hartsfield-Jackson", "Los Angeles Intl"}, series.String, dataset.ColOriginName),
		series.New([]string{"LAX", "LAX", "ORD", "ATL"}, series.String, dataset.ColDestination),
		series.New([]string{"Los Angeles Intl", "Los Angeles Intl", "O'Hare Intl", "Hartsfield-Jackson"}, series.String, dataset.ColDestinationName),
		series.New([]float64{10, 30, 5, 100}, series.Float, dataset.ColArrivalDelay),
	)

	rows := RouteTable(df, 2, 10)
	require.Len(t, rows, 1, "routes under the flight minimum are dropped")
	assert.Equal(t, "ATL", rows[0].Origin)
	assert.Equal(t, "LAX", rows[0].Dest)
	assert.Equal(t, "Los Angeles Intl", rows[0].DestName)
	assert.InDelta(t, 20.0, rows[0].AvgArrDelay, 1e-9)
	assert.Equal(t, 2, rows[0].Flights)
}

func TestHubsVsNonHubs(t *testing.T) {
	origins := []string{"ATL", "ATL", "ATL", "ATL", "LAX", "ORD"}
	delays := []float64{20, 20, 20, 20, 5, 5}
	df := testFrame(t,
		series.New(origins, series.String, dataset.ColOrigin),
		series.New(delays, series.Float, dataset.ColArrivalDelay),
	)

	cmp := HubsVsNonHubs(df)
	require.True(t, cmp.OK)
	assert.Equal(t, 1, cmp.HubAirports)
	assert.Equal(t, 4, cmp.HubFlights)
	assert.Equal(t, 2, cmp.NonHubFlights)
	assert.InDelta(t, 20.0, cmp.HubAvgDelay, 1e-9)
	assert.InDelta(t, 5.0, cmp.NonHubAvgDelay, 1e-9)
}

func TestHubsVsNonHubsEmpty(t *testing.T) {
	df := testFrame(t, series.New([]float64{1}, series.Float, dataset.ColArrivalDelay))
	assert.False(t, HubsVsNonHubs(df).OK)
}
