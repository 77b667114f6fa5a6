// Package web serves the portfolio page and the fragments that keep its
// navigation and project carousel in sync with the browser.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/pranjal299/portfolio/internal/config"
	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/nav"
)

const (
	sessionCookie   = "portfolio_session"
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// Server is the portfolio HTTP server.
type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	store   *Store
	metrics *Metrics
	engine  *gin.Engine
}

// New wires routes and middleware.
func New(cfg config.Config, p *content.Portfolio, logger *zap.Logger, tracer trace.Tracer) (*Server, error) {
	gin.SetMode(cfg.Mode)

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics()
	opts := nav.Options{ReferenceLine: cfg.ReferenceLine, JumpAdjust: cfg.JumpAdjust}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		store:   NewStore(p, opts, cfg.SessionTTL, logger, metrics.SetSessions),
		metrics: metrics,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(tracing(tracer))
	r.Use(requestLogger(logger, newClientHasher()))
	r.Use(visitorTrackingMiddleware(metrics))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(staticAssets()))
	r.Static("/files", cfg.PublicDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	r.GET("/resume", func(c *gin.Context) {
		c.Redirect(http.StatusFound, cfg.ResumePath)
	})

	r.GET("/", s.sessionMiddleware(startSession), s.handleIndex)

	withSession := r.Group("/", s.sessionMiddleware(reuseSession))
	withSession.POST("/projects/next", s.handleCarousel(forward))
	withSession.POST("/projects/prev", s.handleCarousel(backward))
	withSession.POST("/nav/viewport", s.handleViewport)
	withSession.POST("/nav/jump/:section", s.handleJump)
	withSession.POST("/nav/menu/toggle", s.handleMenu(toggleMenu))
	withSession.POST("/nav/menu/close", s.handleMenu(closeMenu))

	s.engine = r
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Store exposes the session store.
func (s *Server) Store() *Store { return s.store }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go s.store.Janitor(janitorCtx, sweepInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving portfolio", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
