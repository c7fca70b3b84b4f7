package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/charts"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
)

func (s *Server) servePNG(c *gin.Context, img []byte, err error) {
	if err == charts.ErrNotEnoughData {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "te weinig data voor deze figuur"})
		return
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("chart render failed: " + err.Error())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "figuur kon niet worden gerenderd"})
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func (s *Server) chartHourly(c *gin.Context) {
	img, err := charts.HourlyDelayLine(analysis.HourlySummary(s.filtered(c)))
	s.servePNG(c, img, err)
}

func (s *Server) chartCauses(c *gin.Context) {
	img, err := charts.CauseShareLines(analysis.HourlySummary(s.filtered(c)))
	s.servePNG(c, img, err)
}

func (s *Server) chartVolume(c *gin.Context) {
	img, err := charts.FlightsPerHourBars(analysis.HourlySummary(s.filtered(c)))
	s.servePNG(c, img, err)
}

func (s *Server) chartAirlines(c *gin.Context) {
	df := s.filtered(c)
	rows := analysis.AirlineRanking(df,
		intParam(c, "min_flights", DefaultAirlineMinFlights),
		intParam(c, "top", DefaultAirlineTop))
	img, err := charts.RankingBars("Gem. aankomstvertraging per maatschappij", rows)
	s.servePNG(c, img, err)
}

func (s *Server) chartAirports(c *gin.Context) {
	df := s.filtered(c)
	rows := analysis.AirportRanking(df,
		intParam(c, "min_flights", DefaultAirportMinFlights),
		intParam(c, "top", DefaultAirportTop))
	img, err := charts.RankingBars("Gem. aankomstvertraging per vertrekluchthaven", rows)
	s.servePNG(c, img, err)
}

func (s *Server) chartScatter(c *gin.Context) {
	df := analysis.WinsorizeDelays(s.filtered(c), floatParam(c, "winsor_pct", DefaultWinsorPct))
	xs, ys := analysis.ScatterPoints(df,
		dataset.ColDepartureDelay, dataset.ColArrivalDelay,
		intParam(c, "sample", DefaultScatterSample))
	img, err := charts.DelayScatter(xs, ys)
	s.servePNG(c, img, err)
}

func (s *Server) chartHourScatter(c *gin.Context) {
	df := analysis.WinsorizeDelays(s.filtered(c), floatParam(c, "winsor_pct", DefaultWinsorPct))
	xs, ys := analysis.ScatterPoints(df,
		dataset.ColDepHour, dataset.ColArrivalDelay,
		intParam(c, "sample", DefaultScatterSample))
	trend := analysis.TrendByHour(df)
	img, err := charts.HourScatter(xs, ys, trend.Slope, trend.Intercept)
	s.servePNG(c, img, err)
}

func (s *Server) chartHubs(c *gin.Context) {
	img, err := charts.HubComparisonBars(analysis.HubsVsNonHubs(s.filtered(c)))
	s.servePNG(c, img, err)
}
