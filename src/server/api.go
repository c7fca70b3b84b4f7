package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-gota/gota/dataframe"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
)

// parseFilters reads the shared filter query parameters. Values are
// comma-separated, e.g. ?months=6,7&airlines=AA,DL.
func parseFilters(c *gin.Context) analysis.Filters {
	return analysis.Filters{
		Months:       intsParam(c, "months"),
		Airlines:     stringsParam(c, "airlines"),
		Origins:      stringsParam(c, "origins"),
		Destinations: stringsParam(c, "destinations"),
	}
}

func (s *Server) filtered(c *gin.Context) dataframe.DataFrame {
	return analysis.Apply(s.store.Frame(), parseFilters(c))
}

func (s *Server) apiKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.Metrics(s.filtered(c)))
}

func (s *Server) apiOptions(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.FilterOptions(s.store.Frame()))
}

func (s *Server) apiHourly(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.HourlySummary(s.filtered(c)))
}

func (s *Server) apiAirlines(c *gin.Context) {
	df := s.filtered(c)
	min := intParam(c, "min_flights", DefaultAirlineMinFlights)
	top := intParam(c, "top", DefaultAirlineTop)
	c.JSON(http.StatusOK, analysis.AirlineRanking(df, min, top))
}

func (s *Server) apiAirports(c *gin.Context) {
	df := s.filtered(c)
	min := intParam(c, "min_flights", DefaultAirportMinFlights)
	top := intParam(c, "top", DefaultAirportTop)
	c.JSON(http.StatusOK, analysis.AirportRanking(df, min, top))
}

func (s *Server) apiRoutes(c *gin.Context) {
	df := s.filtered(c)
	min := intParam(c, "min_flights", DefaultRouteMinFlights)
	top := intParam(c, "top", DefaultRouteTop)
	c.JSON(http.StatusOK, analysis.RouteTable(df, min, top))
}

func (s *Server) apiHubs(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.HubsVsNonHubs(s.filtered(c)))
}

// apiStats runs the hypothesis tests on the (optionally winsorized) data.
func (s *Server) apiStats(c *gin.Context) {
	df := s.filtered(c)
	pct := floatParam(c, "winsor_pct", DefaultWinsorPct)
	df = analysis.WinsorizeDelays(df, pct)

	trend := analysis.TrendByHour(df)
	controlled := analysis.ControlledTrendByHour(df)
	anova := analysis.ANOVAByHour(df)
	corr, corrOK := analysis.DepArrCorrelation(df)

	c.JSON(http.StatusOK, gin.H{
		"winsor_pct":       pct,
		"trend":            trend,
		"controlled_trend": controlled,
		"anova":            anova,
		"dep_arr_corr":     corr,
		"dep_arr_corr_ok":  corrOK,
	})
}

func (s *Server) apiAudit(c *gin.Context) {
	df := s.filtered(c)
	c.JSON(http.StatusOK, gin.H{
		"missing":  analysis.MissingPerColumn(df),
		"describe": analysis.DescribeNumeric(df),
		"head":     analysis.HeadRecords(df, intParam(c, "head", 10)),
	})
}

func intsParam(c *gin.Context, name string) []int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

func stringsParam(c *gin.Context, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func intParam(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func floatParam(c *gin.Context, name string, fallback float64) float64 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
