// Package server exposes the dashboard: four HTML pages, a JSON API, chart
// images, downloads and a live log stream.
package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/dataset"
	"github.com/jellevanwees/individuele-opdracht-Jelle-van-Wees/src/storage"
)

// Default table cutoffs, matching the page controls.
const (
	DefaultAirlineMinFlights = 500
	DefaultAirlineTop        = 20
	DefaultAirportMinFlights = 800
	DefaultAirportTop        = 15
	DefaultRouteMinFlights   = 100
	DefaultRouteTop          = 20
	DefaultWinsorPct         = 1.0
	DefaultScatterSample     = 2000
)

// Server wires the dataset store into the HTTP surface.
type Server struct {
	store  *dataset.Store
	logger *storage.Logger
}

// New builds a server around a loaded store.
func New(store *dataset.Store, logger *storage.Logger) *Server {
	return &Server{store: store, logger: logger}
}

// Router builds the gin engine. templateGlob points at the HTML templates,
// usually "templates/*.html".
func (s *Server) Router(templateGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())
	r.LoadHTMLGlob(templateGlob)

	r.GET("/", s.introPage)
	r.GET("/visualisaties", s.visualisationsPage)
	r.GET("/analyse", s.analysisPage)
	r.GET("/conclusie", s.conclusionPage)

	api := r.Group("/api")
	{
		api.GET("/kpis", s.apiKPIs)
		api.GET("/options", s.apiOptions)
		api.GET("/hourly", s.apiHourly)
		api.GET("/airlines", s.apiAirlines)
		api.GET("/airports", s.apiAirports)
		api.GET("/routes", s.apiRoutes)
		api.GET("/hubs", s.apiHubs)
		api.GET("/stats", s.apiStats)
		api.GET("/audit", s.apiAudit)
	}

	figures := r.Group("/charts")
	{
		figures.GET("/hourly.png", s.chartHourly)
		figures.GET("/causes.png", s.chartCauses)
		figures.GET("/volume.png", s.chartVolume)
		figures.GET("/airlines.png", s.chartAirlines)
		figures.GET("/airports.png", s.chartAirports)
		figures.GET("/scatter.png", s.chartScatter)
		figures.GET("/hour-scatter.png", s.chartHourScatter)
		figures.GET("/hubs.png", s.chartHubs)
	}

	downloads := r.Group("/export")
	{
		downloads.GET("/flights.csv", s.exportFlights)
		downloads.GET("/hourly.csv", s.exportHourly)
		downloads.GET("/routes.csv", s.exportRoutes)
		downloads.GET("/summary.xlsx", s.exportSummary)
	}

	r.GET("/logs", s.streamLogs)
	r.GET("/health", s.health)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if s.logger == nil {
			return
		}
		s.logger.Debug(fmt.Sprintf("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start)))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"rows":      s.store.Rows(),
		"loaded_at": s.store.LoadedAt(),
	})
}

// streamLogs pushes new log entries to the client as server-sent events.
func (s *Server) streamLogs(c *gin.Context) {
	if s.logger == nil {
		c.Status(http.StatusNoContent)
		return
	}

	ch := s.logger.Subscribe()
	defer s.logger.Unsubscribe(ch)

	c.Stream(func(w io.Writer) bool {
		select {
		case entry, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("log", entry)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
