// Package charts renders the dashboard and poster figures as PNG images
// with go-chart. Every renderer returns the encoded image so handlers can
// stream it and the poster generator can embed it.
package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
)

// House palette, shared by every figure.
var (
	colorPrimary = drawing.ColorFromHex("2f4b7c")
	colorAccent  = drawing.ColorFromHex("f28e2c")
	colorMuted   = drawing.ColorFromHex("9aa5b1")
)

// ErrNotEnoughData is returned when a figure has fewer than two points.
var ErrNotEnoughData = errors.New("charts: not enough data to render")

const (
	defaultWidth  = 900
	defaultHeight = 480
)

// HourlyDelayLine plots mean and median arrival delay per departure hour.
func HourlyDelayLine(rows []analysis.HourlyRow) ([]byte, error) {
	if len(rows) < 2 {
		return nil, ErrNotEnoughData
	}

	hours := make([]float64, len(rows))
	means := make([]float64, len(rows))
	medians := make([]float64, len(rows))
	for i, r := range rows {
		hours[i] = float64(r.DepHour)
		means[i] = r.MeanArrDelay
		medians[i] = r.MedianArrDelay
	}

	graph := chart.Chart{
		Title:  "Aankomstvertraging per vertrekuur",
		Width:  defaultWidth,
		Height: defaultHeight,
		XAxis:  chart.XAxis{Name: "Gepland vertrekuur"},
		YAxis:  chart.YAxis{Name: "Vertraging (min)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Gemiddelde",
				XValues: hours,
				YValues: means,
				Style:   chart.Style{StrokeColor: colorPrimary, StrokeWidth: 2.5},
			},
			chart.ContinuousSeries{
				Name:    "Mediaan",
				XValues: hours,
				YValues: medians,
				Style:   chart.Style{StrokeColor: colorAccent, StrokeWidth: 2.5},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return render(&graph)
}

// CauseShareLines plots the weather and late-aircraft delay shares per
// departure hour.
func CauseShareLines(rows []analysis.HourlyRow) ([]byte, error) {
	if len(rows) < 2 {
		return nil, ErrNotEnoughData
	}

	hours := make([]float64, len(rows))
	weather := make([]float64, len(rows))
	lateAircraft := make([]float64, len(rows))
	for i, r := range rows {
		hours[i] = float64(r.DepHour)
		weather[i] = r.WeatherSharePct
		lateAircraft[i] = r.LateAircraftSharePct
	}

	graph := chart.Chart{
		Title:  "Vertragingsoorzaken per vertrekuur",
		Width:  defaultWidth,
		Height: defaultHeight,
		XAxis:  chart.XAxis{Name: "Gepland vertrekuur"},
		YAxis:  chart.YAxis{Name: "Aandeel vluchten (%)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Weer",
				XValues: hours,
				YValues: weather,
				Style:   chart.Style{StrokeColor: colorPrimary, StrokeWidth: 2.5},
			},
			chart.ContinuousSeries{
				Name:    "Doorwerkende vertraging",
				XValues: hours,
				YValues: lateAircraft,
				Style:   chart.Style{StrokeColor: colorAccent, StrokeWidth: 2.5},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return render(&graph)
}

// RankingBars draws one bar per ranked airline or airport. Hubs get the
// accent color.
func RankingBars(title string, rows []analysis.RankRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNotEnoughData
	}

	bars := make([]chart.Value, len(rows))
	for i, r := range rows {
		color := colorPrimary
		if r.Hub {
			color = colorAccent
		}
		bars[i] = chart.Value{
			Label: r.Code,
			Value: r.AvgDelay,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    defaultWidth,
		Height:   defaultHeight,
		BarWidth: barWidth(len(bars)),
		YAxis:    chart.YAxis{Name: "Gem. aankomstvertraging (min)"},
		Bars:     bars,
	}
	return renderBars(&graph)
}

// DelayScatter plots sampled departure against arrival delay with a fitted
// regression line.
func DelayScatter(xs, ys []float64) ([]byte, error) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return nil, ErrNotEnoughData
	}

	points := chart.ContinuousSeries{
		Name:    "Vluchten",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    2,
			DotColor:    colorPrimary.WithAlpha(120),
		},
	}

	graph := chart.Chart{
		Title:  "Vertrekvertraging vs aankomstvertraging",
		Width:  defaultWidth,
		Height: defaultHeight,
		XAxis:  chart.XAxis{Name: "Vertrekvertraging (min)"},
		YAxis:  chart.YAxis{Name: "Aankomstvertraging (min)"},
		Series: []chart.Series{
			points,
			&chart.LinearRegressionSeries{
				Name:        "Trend",
				InnerSeries: points,
				Style:       chart.Style{StrokeColor: colorAccent, StrokeWidth: 2.5},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return render(&graph)
}

// HourScatter plots sampled arrival delay against departure hour with the
// fitted trend line, the core figure of the daily-pattern hypothesis.
func HourScatter(xs, ys []float64, trendSlope, trendIntercept float64) ([]byte, error) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return nil, ErrNotEnoughData
	}

	var minX, maxX = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	graph := chart.Chart{
		Title:  "Aankomstvertraging per vertrekuur (steekproef)",
		Width:  defaultWidth,
		Height: defaultHeight,
		XAxis:  chart.XAxis{Name: "Gepland vertrekuur"},
		YAxis:  chart.YAxis{Name: "Aankomstvertraging (min)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Vluchten",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    2,
					DotColor:    colorMuted.WithAlpha(140),
				},
			},
			chart.ContinuousSeries{
				Name:    "Trend",
				XValues: []float64{minX, maxX},
				YValues: []float64{trendIntercept + trendSlope*minX, trendIntercept + trendSlope*maxX},
				Style:   chart.Style{StrokeColor: colorAccent, StrokeWidth: 2.5},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return render(&graph)
}

// HubComparisonBars contrasts the mean delay at hubs with the remaining
// origins.
func HubComparisonBars(cmp analysis.HubComparison) ([]byte, error) {
	if !cmp.OK {
		return nil, ErrNotEnoughData
	}

	graph := chart.BarChart{
		Title:    "Hubs versus overige luchthavens",
		Width:    600,
		Height:   defaultHeight,
		BarWidth: 120,
		YAxis:    chart.YAxis{Name: "Gem. aankomstvertraging (min)"},
		Bars: []chart.Value{
			{
				Label: fmt.Sprintf("Hubs (%d)", cmp.HubAirports),
				Value: cmp.HubAvgDelay,
				Style: chart.Style{FillColor: colorAccent, StrokeColor: colorAccent},
			},
			{
				Label: "Overig",
				Value: cmp.NonHubAvgDelay,
				Style: chart.Style{FillColor: colorPrimary, StrokeColor: colorPrimary},
			},
		},
	}
	return renderBars(&graph)
}

// FlightsPerHourBars shows traffic volume per departure hour.
func FlightsPerHourBars(rows []analysis.HourlyRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNotEnoughData
	}

	bars := make([]chart.Value, len(rows))
	for i, r := range rows {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%d", r.DepHour),
			Value: float64(r.Flights),
			Style: chart.Style{FillColor: colorPrimary, StrokeColor: colorPrimary},
		}
	}

	graph := chart.BarChart{
		Title:    "Aantal vluchten per vertrekuur",
		Width:    defaultWidth,
		Height:   defaultHeight,
		BarWidth: barWidth(len(bars)),
		YAxis:    chart.YAxis{Name: "Vluchten"},
		Bars:     bars,
	}
	return renderBars(&graph)
}

func barWidth(bars int) int {
	if bars <= 0 {
		return 30
	}
	w := (defaultWidth - 100) / bars
	if w > 60 {
		w = 60
	}
	if w < 8 {
		w = 8
	}
	return w
}

func render(graph *chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", graph.Title, err)
	}
	return buf.Bytes(), nil
}

func renderBars(graph *chart.BarChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", graph.Title, err)
	}
	return buf.Bytes(), nil
}
