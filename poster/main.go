// Command poster renders the research poster as an A1 PDF: the key numbers,
// the hourly delay figures and the conclusion, generated straight from the
// dataset.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"

	"github.com/go-gota/gota/dataframe"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/charts"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/config"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/stats"
)

// A1 portrait in millimeters.
const (
	pageWidth  = 594.0
	pageHeight = 841.0
	margin     = 25.0
)

var dutch = message.NewPrinter(language.Dutch)

func main() {
	configDir := flag.String("config", "./config", "directory holding config.json")
	output := flag.String("o", "poster.pdf", "output file")
	winsorPct := flag.Float64("winsor", 1, "winsorization percentile for the delay columns")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir, "config.json")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	df, err := dataset.Pipeline(cfg.FlightsPath(), cfg.AirlinesPath(), cfg.AirportsPath(), cfg.RowLimit)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}
	df = analysis.WinsorizeDelays(df, *winsorPct)

	if err := BuildPoster(df, *output); err != nil {
		log.Fatal("Failed to build poster:", err)
	}
	log.Printf("Poster written to %s", *output)
}

// BuildPoster composes the A1 poster from the derived table and writes it to
// output.
func BuildPoster(df dataframe.DataFrame, output string) error {
	hourly := analysis.HourlySummary(df)
	trend := analysis.TrendByHour(df)
	controlled := analysis.ControlledTrendByHour(df)
	anova := analysis.ANOVAByHour(df)
	kpis := analysis.Metrics(df)
	hubs := analysis.HubsVsNonHubs(df)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	drawHeader(pdf)
	y := drawKPIBand(pdf, kpis, 95)

	colWidth := (pageWidth - 3*margin) / 2
	leftX := margin
	rightX := margin + colWidth + margin

	// left column: the two hourly figures
	y += 10
	img, err := charts.HourlyDelayLine(hourly)
	if err != nil {
		return fmt.Errorf("hourly figure: %w", err)
	}
	if err := placeImage(pdf, "hourly", img, leftX, y, colWidth); err != nil {
		return err
	}
	img, err = charts.CauseShareLines(hourly)
	if err != nil {
		return fmt.Errorf("causes figure: %w", err)
	}
	if err := placeImage(pdf, "causes", img, leftX, y+colWidth*0.55+15, colWidth); err != nil {
		return err
	}

	// right column: scatter with trend line and the hub comparison
	xs, ys := analysis.ScatterPoints(df, dataset.ColDepHour, dataset.ColArrivalDelay, 2000)
	img, err = charts.HourScatter(xs, ys, trend.Slope, trend.Intercept)
	if err != nil {
		return fmt.Errorf("scatter figure: %w", err)
	}
	if err := placeImage(pdf, "scatter", img, rightX, y, colWidth); err != nil {
		return err
	}
	if hubs.OK {
		img, err = charts.HubComparisonBars(hubs)
		if err != nil {
			return fmt.Errorf("hub figure: %w", err)
		}
		if err := placeImage(pdf, "hubs", img, rightX, y+colWidth*0.55+15, colWidth); err != nil {
			return err
		}
	}

	drawStatsBlock(pdf, trend, controlled, anova, y+2*(colWidth*0.55)+40)
	drawConclusion(pdf, trend, hubs)

	if err := pdf.OutputFileAndClose(output); err != nil {
		return fmt.Errorf("write poster pdf: %w", err)
	}
	return nil
}

func drawHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(47, 75, 124)
	pdf.Rect(0, 0, pageWidth, 70, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 44)
	pdf.SetXY(margin, 18)
	pdf.CellFormat(pageWidth-2*margin, 16, "Loont vroeg vertrekken?", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 24)
	pdf.SetXY(margin, 40)
	pdf.CellFormat(pageWidth-2*margin, 10,
		"Aankomstvertraging van Amerikaanse binnenlandse vluchten per gepland vertrekuur (2015)",
		"", 1, "L", false, 0, "")
}

func drawKPIBand(pdf *gofpdf.Fpdf, k analysis.KPIs, y float64) float64 {
	cells := []struct{ value, label string }{
		{dutch.Sprintf("%d", k.Flights), "vluchten"},
		{dutch.Sprintf("%.1f%%", k.LatePct), "15+ min te laat"},
		{dutch.Sprintf("%.1f min", k.MeanArrDelay), "gem. aankomstvertraging"},
		{dutch.Sprintf("%d", k.Airlines), "maatschappijen"},
		{dutch.Sprintf("%d", k.Origins), "vertrekluchthavens"},
	}

	cellWidth := (pageWidth - 2*margin) / float64(len(cells))
	pdf.SetTextColor(47, 75, 124)
	for i, cell := range cells {
		x := margin + float64(i)*cellWidth
		pdf.SetFont("Helvetica", "B", 34)
		pdf.SetXY(x, y)
		pdf.CellFormat(cellWidth, 14, cell.value, "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 16)
		pdf.SetXY(x, y+16)
		pdf.CellFormat(cellWidth, 8, cell.label, "", 0, "C", false, 0, "")
	}
	return y + 30
}

func placeImage(pdf *gofpdf.Fpdf, name string, png []byte, x, y, width float64) error {
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x, y, width, 0, false, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("place image %s: %v", name, pdf.Error())
	}
	return nil
}

func drawStatsBlock(pdf *gofpdf.Fpdf, trend, controlled stats.Trend, anova stats.ANOVA, y float64) {
	pdf.SetTextColor(31, 41, 51)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(margin, y)
	pdf.CellFormat(pageWidth-2*margin, 10, "Statistiek", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 16)
	lines := []string{
		dutch.Sprintf("Trend: +%.2f min vertraging per vertrekuur (R2 = %.3f, n = %d)",
			trend.Slope, trend.R2, trend.N),
		dutch.Sprintf("Gecorrigeerd voor maand en weekdag: +%.2f min per uur (R2 = %.3f)",
			controlled.Slope, controlled.R2),
	}
	if anova.OK {
		lines = append(lines, dutch.Sprintf(
			"ANOVA over vertrekuren: F = %.1f, p = %.2g, effectgrootte = %.3f",
			anova.F, anova.P, anova.EffectSize))
	}
	for i, line := range lines {
		pdf.SetXY(margin, y+14+float64(i)*9)
		pdf.CellFormat(pageWidth-2*margin, 8, line, "", 1, "L", false, 0, "")
	}
}

func drawConclusion(pdf *gofpdf.Fpdf, trend stats.Trend, hubs analysis.HubComparison) {
	y := pageHeight - 95.0
	pdf.SetFillColor(242, 142, 44)
	pdf.Rect(margin, y, pageWidth-2*margin, 60, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetXY(margin+10, y+10)
	pdf.CellFormat(pageWidth-2*margin-20, 12, "Conclusie", "", 1, "L", false, 0, "")

	text := dutch.Sprintf(
		"Vroeg vertrekken loont: de gemiddelde aankomstvertraging loopt op met %.2f minuut per gepland vertrekuur.",
		trend.Slope)
	if hubs.OK {
		text += dutch.Sprintf(
			" Hubvluchten zijn gemiddeld %.1f min vertraagd tegenover %.1f min elders.",
			hubs.HubAvgDelay, hubs.NonHubAvgDelay)
	}
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetXY(margin+10, y+26)
	pdf.MultiCell(pageWidth-2*margin-20, 9, text, "", "L", false)
}
