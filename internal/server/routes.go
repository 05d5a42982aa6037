package server

import (
	"github.com/gin-gonic/gin"

	"github.com/tsawler/sentiment/internal/metrics"
)

func (s *Server) registerRoutes() {
	s.engine.Use(
		s.recovery(),
		s.requestLogger(),
		corsHeaders(),
		s.httpMetrics.Middleware(),
	)

	s.engine.GET("/", s.handleIndex)

	analyzer := s.engine.Group("/analyzer")
	{
		analyzer.POST("", s.handleAnalyze)
		analyzer.POST("/sentences", s.handleAnalyzeSentences)
	}

	s.engine.GET("/healthz", s.handleLiveness)
	s.engine.GET("/readyz", s.handleReadiness)
	s.engine.GET("/metrics", gin.WrapH(metrics.Handler(s.registry)))
}
