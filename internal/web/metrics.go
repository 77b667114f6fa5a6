package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics are privacy-conscious visitor counters. Nothing identifying a
// visitor is recorded and nothing outlives the process.
type Metrics struct {
	Registry *prometheus.Registry

	pageViews     *prometheus.CounterVec
	carouselMoves *prometheus.CounterVec
	navJumps      *prometheus.CounterVec
	sessions      prometheus.Gauge
}

// NewMetrics registers the portfolio collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Tracked GET requests by route, excluding static assets and Do-Not-Track visitors.",
		}, []string{"route"}),
		carouselMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "carousel_moves_total",
			Help:      "Carousel page changes by direction.",
		}, []string{"direction"}),
		navJumps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "nav_jumps_total",
			Help:      "Jump-to-section requests by target section.",
		}, []string{"section"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Name:      "sessions",
			Help:      "Live in-memory page sessions.",
		}),
	}
	m.Registry.MustRegister(
		m.pageViews,
		m.carouselMoves,
		m.navJumps,
		m.sessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// SetSessions records the live session count.
func (m *Metrics) SetSessions(n int) { m.sessions.Set(float64(n)) }

func (m *Metrics) carouselMoved(direction string) {
	m.carouselMoves.WithLabelValues(direction).Inc()
}

func (m *Metrics) jumped(section string) {
	m.navJumps.WithLabelValues(section).Inc()
}

var untrackedPrefixes = []string{"/static/", "/files/", "/metrics", "/healthz", "/favicon"}

// visitorTrackingMiddleware counts page views by route template. Only GET
// requests are views; fragment posts from scrolling and clicks are not.
// Static assets and operational endpoints are skipped and Do-Not-Track is
// honored.
func visitorTrackingMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.pageViews.WithLabelValues(route).Inc()
	}
}
