package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightsHeader = "MONTH,DAY_OF_WEEK,AIRLINE,ORIGIN_AIRPORT,DESTINATION_AIRPORT,SCHEDULED_DEPARTURE,DEPARTURE_DELAY,ARRIVAL_DELAY,WEATHER_DELAY,LATE_AIRCRAFT_DELAY,CANCELLED,DIVERTED\n"

const airlinesCSV = `IATA_CODE,AIRLINE
AA,American Airlines Inc.
DL,Delta Air Lines Inc.
WN,Southwest Airlines Co.
`

const airportsCSV = `IATA_CODE,AIRPORT,CITY,STATE,COUNTRY
ATL,Hartsfield-Jackson Atlanta International Airport,Atlanta,GA,USA
LAX,Los Angeles International Airport,Los Angeles,CA,USA
ORD,Chicago O'Hare International Airport,Chicago,IL,USA
`

// writeInputs writes a full input set and returns the three paths.
func writeInputs(t *testing.T, flightRows string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()

	flights := filepath.Join(dir, "flights.csv")
	airlines := filepath.Join(dir, "airlines.csv")
	airports := filepath.Join(dir, "airports.csv")

	require.NoError(t, os.WriteFile(flights, []byte(flightsHeader+flightRows), 0644))
	require.NoError(t, os.WriteFile(airlines, []byte(airlinesCSV), 0644))
	require.NoError(t, os.WriteFile(airports, []byte(airportsCSV), 0644))

	return flights, airlines, airports
}

func TestLoadReadsAllThreeTables(t *testing.T) {
	rows := "1,3,AA,ATL,LAX,900,5,10,0,0,0,0\n" +
		"2,4,DL,LAX,ATL,1730,20,25,12,0,0,0\n"
	flights, airlines, airports := writeInputs(t, rows)

	tables, err := Load(flights, airlines, airports, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, tables.Flights.Nrow())
	assert.Equal(t, 3, tables.Airlines.Nrow())
	assert.Equal(t, 3, tables.Airports.Nrow())
}

func TestReadFlightsHonorsRowLimit(t *testing.T) {
	rows := "1,1,AA,ATL,LAX,900,5,10,0,0,0,0\n" +
		"1,2,AA,ATL,LAX,1000,5,10,0,0,0,0\n" +
		"1,3,AA,ATL,LAX,1100,5,10,0,0,0,0\n" +
		"1,4,AA,ATL,LAX,1200,5,10,0,0,0,0\n"
	flights, _, _ := writeInputs(t, rows)

	df, err := ReadFlights(flights, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
}

func TestReadFlightsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.csv")
	_, err := ReadFlights(path, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestReadFlightsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flights.csv")
	// a data row with more fields than the header
	body := "A,B\n1,2,3,4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	_, err := ReadFlights(path, 0)
	assert.Error(t, err)
}

func TestLoadMissingLabelFile(t *testing.T) {
	flights, airlines, _ := writeInputs(t, "1,3,AA,ATL,LAX,900,5,10,0,0,0,0\n")
	_, err := Load(flights, airlines, filepath.Join(t.TempDir(), "airports.csv"), 0)
	assert.Error(t, err)
}

func TestHasColumn(t *testing.T) {
	flights, airlines, airports := writeInputs(t, "1,3,AA,ATL,LAX,900,5,10,0,0,0,0\n")
	tables, err := Load(flights, airlines, airports, 0)
	require.NoError(t, err)

	assert.True(t, HasColumn(tables.Flights, ColArrivalDelay))
	assert.False(t, HasColumn(tables.Flights, "NO_SUCH_COLUMN"))
}
