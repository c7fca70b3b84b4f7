package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names from the 2015 Kaggle flight-delay schema, plus the label and
// derived columns this pipeline appends.
const (
	ColMonth              = "MONTH"
	ColDayOfWeek          = "DAY_OF_WEEK"
	ColAirline            = "AIRLINE"
	ColOrigin             = "ORIGIN_AIRPORT"
	ColDestination        = "DESTINATION_AIRPORT"
	ColScheduledDeparture = "SCHEDULED_DEPARTURE"
	ColDepartureDelay     = "DEPARTURE_DELAY"
	ColArrivalDelay       = "ARRIVAL_DELAY"
	ColWeatherDelay       = "WEATHER_DELAY"
	ColLateAircraftDelay  = "LATE_AIRCRAFT_DELAY"
	ColCancelled          = "CANCELLED"
	ColDiverted           = "DIVERTED"

	ColAirlineName     = "AIRLINE_NAME"
	ColOriginName      = "ORIGIN_AIRPORT_NAME"
	ColDestinationName = "DESTINATION_AIRPORT_NAME"

	ColDepHour              = "dep_hour"
	ColIsLate15             = "is_late_15"
	ColHasWeatherDelay      = "has_weather_delay"
	ColHasLateAircraftDelay = "has_late_aircraft_delay"
)

// Tables bundles the three raw inputs of one load.
type Tables struct {
	Flights  dataframe.DataFrame
	Airlines dataframe.DataFrame
	Airports dataframe.DataFrame
}

// numericTypes forces the delay columns to float so empty cells become NaN
// instead of silently turning the whole column into strings.
func numericTypes() map[string]series.Type {
	return map[string]series.Type{
		ColMonth:              series.Int,
		ColDayOfWeek:          series.Int,
		ColScheduledDeparture: series.Float,
		ColDepartureDelay:     series.Float,
		ColArrivalDelay:       series.Float,
		ColWeatherDelay:       series.Float,
		ColLateAircraftDelay:  series.Float,
		ColCancelled:          series.Int,
		ColDiverted:           series.Int,
	}
}

// Load reads the three tabular inputs. Any missing or malformed file is a
// fatal load error; there is no retry, this is a one-shot batch load.
func Load(flightsPath, airlinesPath, airportsPath string, rowLimit int) (Tables, error) {
	flights, err := ReadFlights(flightsPath, rowLimit)
	if err != nil {
		return Tables{}, err
	}

	airlines, err := readLabelCSV(airlinesPath)
	if err != nil {
		return Tables{}, err
	}

	airports, err := readLabelCSV(airportsPath)
	if err != nil {
		return Tables{}, err
	}

	return Tables{Flights: flights, Airlines: airlines, Airports: airports}, nil
}

// ReadFlights loads at most rowLimit flight rows (0 = everything).
func ReadFlights(path string, rowLimit int) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open flights file %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if rowLimit > 0 {
		limited, err := headRows(f, rowLimit)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("failed to read flights file %s: %w", path, err)
		}
		r = limited
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(numericTypes()),
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse flights file %s: %w", path, df.Err)
	}
	return df, nil
}

func readLabelCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open label file %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse label file %s: %w", path, df.Err)
	}
	return df, nil
}

// headRows returns a reader over the header line plus at most limit data
// lines. The flights file has no quoted newlines, so a line is a row.
func headRows(r io.Reader, limit int) (io.Reader, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for i := 0; i <= limit && scanner.Scan(); i++ {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return strings.NewReader(sb.String()), nil
}

// HasColumn reports whether the frame carries the named column.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
