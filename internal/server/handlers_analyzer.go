package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tsawler/sentiment"
)

type sentencesResponse struct {
	Label     sentiment.Label           `json:"label"`
	Scores    sentiment.Scores          `json:"scores"`
	Sentences []sentiment.SentenceScore `json:"sentences"`
}

// handleAnalyze responds with the bare label as a JSON string.
func (s *Server) handleAnalyze(c *gin.Context) {
	text, ok := s.input(c)
	if !ok {
		return
	}

	start := time.Now()
	label := s.analyzer.Classify(text)
	s.classifierMetrics.ClassifyDuration.Observe(time.Since(start).Seconds())
	s.classifierMetrics.Classifications.WithLabelValues(label.String()).Inc()

	c.JSON(http.StatusOK, label)
}

func (s *Server) handleAnalyzeSentences(c *gin.Context) {
	text, ok := s.input(c)
	if !ok {
		return
	}

	start := time.Now()
	sents, err := s.analyzer.AnalyzeSentences(text)
	if err != nil {
		s.log.Error("Sentence analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Sentence analysis failed"})
		return
	}
	scores := s.analyzer.PolarityScores(text)
	s.classifierMetrics.ClassifyDuration.Observe(time.Since(start).Seconds())
	s.classifierMetrics.Classifications.WithLabelValues(scores.Label().String()).Inc()

	c.JSON(http.StatusOK, sentencesResponse{
		Label:     scores.Label(),
		Scores:    scores,
		Sentences: sents,
	})
}

// input validates the request body, writing the 400 response itself on
// failure.
func (s *Server) input(c *gin.Context) (string, bool) {
	text, reqErr := readInput(c, s.config.MaxInputLength)
	if reqErr != nil {
		s.classifierMetrics.Rejections.WithLabelValues(reqErr.Reason).Inc()
		_ = c.Error(reqErr)
		c.JSON(http.StatusBadRequest, gin.H{"message": reqErr.Message})
		return "", false
	}
	s.classifierMetrics.InputLength.Observe(float64(len([]rune(text))))
	return text, true
}
