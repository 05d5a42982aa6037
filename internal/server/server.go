package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tsawler/sentiment"
	"github.com/tsawler/sentiment/internal/config"
	"github.com/tsawler/sentiment/internal/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the analyzer over HTTP.
type Server struct {
	engine            *gin.Engine
	config            config.ServerConfig
	analyzer          *sentiment.Analyzer
	log               *zap.Logger
	registry          *prometheus.Registry
	httpMetrics       *metrics.HTTPMetrics
	classifierMetrics *metrics.ClassifierMetrics
	startTime         time.Time
}

// NewServer wires the gin engine, middleware and routes. reg receives the
// HTTP and classifier metrics and is served on /metrics.
func NewServer(cfg config.ServerConfig, analyzer *sentiment.Analyzer, log *zap.Logger, reg *prometheus.Registry) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.SetHTMLTemplate(tmpl)

	srv := &Server{
		engine:            engine,
		config:            cfg,
		analyzer:          analyzer,
		log:               log,
		registry:          reg,
		httpMetrics:       metrics.NewHTTPMetrics(reg),
		classifierMetrics: metrics.NewClassifierMetrics(reg),
		startTime:         time.Now(),
	}
	srv.classifierMetrics.LexiconEntries.Set(float64(analyzer.Lexicon().Size()))

	srv.registerRoutes()

	return srv, nil
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server",
			zap.String("addr", httpServer.Addr),
			zap.String("url", s.config.BaseURL()))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server", zap.Duration("timeout", s.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
