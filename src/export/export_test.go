package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
)

func TestFlightsCSV(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"AA", "DL"}, series.String, "AIRLINE"),
		series.New([]float64{5.5, -2}, series.Float, "ARRIVAL_DELAY"),
	)
	require.NoError(t, df.Error())

	var buf bytes.Buffer
	require.NoError(t, FlightsCSV(&buf, df))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "AIRLINE,ARRIVAL_DELAY", lines[0])
	assert.Contains(t, lines[1], "AA")
}

func TestHourlyCSV(t *testing.T) {
	rows := []analysis.HourlyRow{
		{DepHour: 6, MeanArrDelay: 1.234, MedianArrDelay: -0.5, WeatherSharePct: 2.5, LateAircraftSharePct: 10, Flights: 420},
	}

	var buf bytes.Buffer
	require.NoError(t, HourlyCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "dep_hour,mean_arr_delay,median_arr_delay,weather_share_pct,late_aircraft_share_pct,flights", lines[0])
	assert.Equal(t, "6,1.23,-0.50,2.50,10.00,420", lines[1])
}

func TestRoutesCSV(t *testing.T) {
	rows := []analysis.RouteRow{
		{Origin: "ATL", OriginName: "Hartsfield-Jackson", Dest: "LAX", DestName: "Los Angeles Intl", AvgArrDelay: 7.125, Flights: 150},
	}

	var buf bytes.Buffer
	require.NoError(t, RoutesCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ATL,Hartsfield-Jackson,LAX,Los Angeles Intl,7.13,150", lines[1])
}

func TestSummaryWorkbook(t *testing.T) {
	s := Summary{
		KPIs: analysis.KPIs{Flights: 1000, LatePct: 18.5, MeanDepDelay: 9.1, MeanArrDelay: 4.4, Airlines: 14, Origins: 300},
		Hourly: []analysis.HourlyRow{
			{DepHour: 6, MeanArrDelay: 1.2, MedianArrDelay: -1, Flights: 400},
			{DepHour: 18, MeanArrDelay: 12.7, MedianArrDelay: 5, Flights: 380},
		},
		Airlines: []analysis.RankRow{{Code: "NK", Name: "Spirit Air Lines", AvgDelay: 14.5, Flights: 600}},
		Airports: []analysis.RankRow{{Code: "ORD", Name: "O'Hare Intl", AvgDelay: 11.2, Flights: 900, Hub: true}},
		Routes:   []analysis.RouteRow{{Origin: "ATL", Dest: "LAX", AvgArrDelay: 7.5, Flights: 120}},
	}

	var buf bytes.Buffer
	require.NoError(t, SummaryWorkbook(&buf, s))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Kerngetallen", "Per uur", "Maatschappijen", "Luchthavens", "Routes"}, f.GetSheetList())

	flights, err := f.GetCellValue("Kerngetallen", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1000", flights)

	hour, err := f.GetCellValue("Per uur", "A3")
	require.NoError(t, err)
	assert.Equal(t, "18", hour)

	code, err := f.GetCellValue("Maatschappijen", "A2")
	require.NoError(t, err)
	assert.Equal(t, "NK", code)

	hub, err := f.GetCellValue("Luchthavens", "E2")
	require.NoError(t, err)
	assert.Equal(t, "TRUE", hub)
}
