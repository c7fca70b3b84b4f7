// Package export writes the filtered data and the page aggregations as
// downloadable CSV and Excel files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
)

// FlightsCSV streams the filtered flight table as CSV.
func FlightsCSV(w io.Writer, df dataframe.DataFrame) error {
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write flights csv: %w", err)
	}
	return nil
}

// HourlyCSV writes the hourly summary as CSV.
func HourlyCSV(w io.Writer, rows []analysis.HourlyRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"dep_hour", "mean_arr_delay", "median_arr_delay", "weather_share_pct", "late_aircraft_share_pct", "flights"}); err != nil {
		return fmt.Errorf("write hourly csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.DepHour),
			formatFloat(r.MeanArrDelay),
			formatFloat(r.MedianArrDelay),
			formatFloat(r.WeatherSharePct),
			formatFloat(r.LateAircraftSharePct),
			strconv.Itoa(r.Flights),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write hourly csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RoutesCSV writes the route ranking as CSV.
func RoutesCSV(w io.Writer, rows []analysis.RouteRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"origin", "origin_name", "dest", "dest_name", "avg_arrival_delay", "flights"}); err != nil {
		return fmt.Errorf("write routes csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Origin,
			r.OriginName,
			r.Dest,
			r.DestName,
			formatFloat(r.AvgArrDelay),
			strconv.Itoa(r.Flights),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write routes csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary bundles everything the Excel workbook contains.
type Summary struct {
	KPIs     analysis.KPIs
	Hourly   []analysis.HourlyRow
	Airlines []analysis.RankRow
	Airports []analysis.RankRow
	Routes   []analysis.RouteRow
}

// SummaryWorkbook writes a workbook with one sheet per aggregation.
func SummaryWorkbook(w io.Writer, s Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeKPISheet(f, s.KPIs); err != nil {
		return err
	}
	if err := writeSheet(f, "Per uur", hourlyCells(s.Hourly)); err != nil {
		return err
	}
	if err := writeSheet(f, "Maatschappijen", rankCells(s.Airlines, false)); err != nil {
		return err
	}
	if err := writeSheet(f, "Luchthavens", rankCells(s.Airports, true)); err != nil {
		return err
	}
	if err := writeSheet(f, "Routes", routeCells(s.Routes)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write summary workbook: %w", err)
	}
	return nil
}

func writeKPISheet(f *excelize.File, k analysis.KPIs) error {
	rows := [][]interface{}{
		{"Kerngetal", "Waarde"},
		{"Vluchten", k.Flights},
		{"Aandeel 15+ min te laat (%)", k.LatePct},
		{"Gem. vertrekvertraging (min)", k.MeanDepDelay},
		{"Gem. aankomstvertraging (min)", k.MeanArrDelay},
		{"Maatschappijen", k.Airlines},
		{"Vertrekluchthavens", k.Origins},
		{"Gem. ontbrekende waarden (%)", k.AvgMissingPct},
	}
	// the default sheet becomes the KPI overview
	if err := f.SetSheetName("Sheet1", "Kerngetallen"); err != nil {
		return fmt.Errorf("rename kpi sheet: %w", err)
	}
	return fillSheet(f, "Kerngetallen", rows)
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	return fillSheet(f, name, rows)
}

func fillSheet(f *excelize.File, name string, rows [][]interface{}) error {
	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("cell name (%d,%d): %w", colIdx+1, rowIdx+1, err)
			}
			if err := f.SetCellValue(name, cell, val); err != nil {
				return fmt.Errorf("set cell %s!%s: %w", name, cell, err)
			}
		}
	}
	return nil
}

func hourlyCells(rows []analysis.HourlyRow) [][]interface{} {
	out := [][]interface{}{{"Vertrekuur", "Gem. vertraging", "Mediaan vertraging", "Aandeel weer (%)", "Aandeel doorwerkend (%)", "Vluchten"}}
	for _, r := range rows {
		out = append(out, []interface{}{r.DepHour, r.MeanArrDelay, r.MedianArrDelay, r.WeatherSharePct, r.LateAircraftSharePct, r.Flights})
	}
	return out
}

func rankCells(rows []analysis.RankRow, withHub bool) [][]interface{} {
	header := []interface{}{"Code", "Naam", "Gem. vertraging", "Vluchten"}
	if withHub {
		header = append(header, "Hub")
	}
	out := [][]interface{}{header}
	for _, r := range rows {
		row := []interface{}{r.Code, r.Name, r.AvgDelay, r.Flights}
		if withHub {
			row = append(row, r.Hub)
		}
		out = append(out, row)
	}
	return out
}

func routeCells(rows []analysis.RouteRow) [][]interface{} {
	out := [][]interface{}{{"Van", "Van (naam)", "Naar", "Naar (naam)", "Gem. vertraging", "Vluchten"}}
	for _, r := range rows {
		out = append(out, []interface{}{r.Origin, r.OriginName, r.Dest, r.DestName, r.AvgArrDelay, r.Flights})
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
