package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"analyzerEndpointUrl":    s.config.BaseURL() + "/analyzer",
		"applicationContentType": jsonContentType,
		"inputKey":               inputKey,
	})
}
