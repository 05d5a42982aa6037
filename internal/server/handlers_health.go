package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}

// handleReadiness reports unhealthy until a non-empty lexicon is loaded.
func (s *Server) handleReadiness(c *gin.Context) {
	size := s.analyzer.Lexicon().Size()
	if size == 0 {
		c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":       "unhealthy",
			"failed_check": "lexicon",
			"error":        "lexicon is empty",
		})
		return
	}

	c.JSON(http.StatusOK, map[string]any{
		"status":          "ready",
		"lexicon_entries": size,
	})
}
