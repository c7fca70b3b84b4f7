package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/analysis"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/export"
)

func (s *Server) serveDownload(c *gin.Context, filename, contentType string, build func(w *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := build(&buf); err != nil {
		if s.logger != nil {
			s.logger.Error("export failed: " + err.Error())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export mislukt"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) exportFlights(c *gin.Context) {
	df := s.filtered(c)
	s.serveDownload(c, "flights.csv", "text/csv", func(w *bytes.Buffer) error {
		return export.FlightsCSV(w, df)
	})
}

func (s *Server) exportHourly(c *gin.Context) {
	rows := analysis.HourlySummary(s.filtered(c))
	s.serveDownload(c, "hourly.csv", "text/csv", func(w *bytes.Buffer) error {
		return export.HourlyCSV(w, rows)
	})
}

func (s *Server) exportRoutes(c *gin.Context) {
	rows := analysis.RouteTable(s.filtered(c),
		intParam(c, "min_flights", DefaultRouteMinFlights),
		intParam(c, "top", DefaultRouteTop))
	s.serveDownload(c, "routes.csv", "text/csv", func(w *bytes.Buffer) error {
		return export.RoutesCSV(w, rows)
	})
}

func (s *Server) exportSummary(c *gin.Context) {
	df := s.filtered(c)
	summary := export.Summary{
		KPIs:     analysis.Metrics(df),
		Hourly:   analysis.HourlySummary(df),
		Airlines: analysis.AirlineRanking(df, DefaultAirlineMinFlights, DefaultAirlineTop),
		Airports: analysis.AirportRanking(df, DefaultAirportMinFlights, DefaultAirportTop),
		Routes:   analysis.RouteTable(df, DefaultRouteMinFlights, DefaultRouteTop),
	}
	s.serveDownload(c, "summary.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		func(w *bytes.Buffer) error {
			return export.SummaryWorkbook(w, summary)
		})
}
