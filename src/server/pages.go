package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
)

// dutch formats numbers with Dutch separators (1.234.567,8) on the pages.
var dutch = message.NewPrinter(language.Dutch)

func (s *Server) introPage(c *gin.Context) {
	df := s.store.Frame()
	k := analysis.Metrics(df)

	c.HTML(http.StatusOK, "intro.html", gin.H{
		"Title":        "Introductie",
		"Flights":      dutch.Sprintf("%d", k.Flights),
		"LatePct":      dutch.Sprintf("%.1f", k.LatePct),
		"MeanDepDelay": dutch.Sprintf("%.1f", k.MeanDepDelay),
		"MeanArrDelay": dutch.Sprintf("%.1f", k.MeanArrDelay),
		"Airlines":     k.Airlines,
		"Origins":      k.Origins,
		"Missing":      analysis.MissingPerColumn(df),
		"Head":         analysis.HeadRecords(df, 10),
		"LoadedAt":     s.store.LoadedAt().Format("2006-01-02 15:04"),
	})
}

func (s *Server) visualisationsPage(c *gin.Context) {
	df := s.filtered(c)
	query := c.Request.URL.RawQuery

	c.HTML(http.StatusOK, "visualisaties.html", gin.H{
		"Title":    "Visualisaties",
		"Query":    query,
		"Options":  analysis.FilterOptions(s.store.Frame()),
		"Filters":  parseFilters(c),
		"Hourly":   analysis.HourlySummary(df),
		"Airlines": analysis.AirlineRanking(df, DefaultAirlineMinFlights, DefaultAirlineTop),
		"Airports": analysis.AirportRanking(df, DefaultAirportMinFlights, DefaultAirportTop),
		"Routes":   analysis.RouteTable(df, DefaultRouteMinFlights, DefaultRouteTop),
	})
}

func (s *Server) analysisPage(c *gin.Context) {
	pct := floatParam(c, "winsor_pct", DefaultWinsorPct)
	df := analysis.WinsorizeDelays(s.filtered(c), pct)

	trend := analysis.TrendByHour(df)
	controlled := analysis.ControlledTrendByHour(df)
	anova := analysis.ANOVAByHour(df)
	corr, _ := analysis.DepArrCorrelation(df)

	c.HTML(http.StatusOK, "analyse.html", gin.H{
		"Title":           "Analyse",
		"Query":           c.Request.URL.RawQuery,
		"WinsorPct":       pct,
		"WinsorHigh":      100 - pct,
		"Trend":           trend,
		"ControlledTrend": controlled,
		"ANOVA":           anova,
		"Correlation":     dutch.Sprintf("%.3f", corr),
		"Hubs":            analysis.HubsVsNonHubs(df),
	})
}

func (s *Server) conclusionPage(c *gin.Context) {
	df := s.store.Frame()
	trend := analysis.TrendByHour(df)
	anova := analysis.ANOVAByHour(df)

	c.HTML(http.StatusOK, "conclusie.html", gin.H{
		"Title":       "Conclusie",
		"Trend":       trend,
		"ANOVA":       anova,
		"Hubs":        analysis.HubsVsNonHubs(df),
		"Flights":     dutch.Sprintf("%d", df.Nrow()),
		"SlopePerUur": dutch.Sprintf("%.2f", trend.Slope),
	})
}
