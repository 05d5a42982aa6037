package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryServesRuntimeMetrics(t *testing.T) {
	reg := NewRegistry()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestClassifierMetrics(t *testing.T) {
	reg := NewRegistry()
	m := NewClassifierMetrics(reg)

	m.Classifications.WithLabelValues("Positive").Inc()
	m.Classifications.WithLabelValues("Positive").Inc()
	m.Classifications.WithLabelValues("Negative").Inc()
	m.Rejections.WithLabelValues("too_long").Inc()
	m.LexiconEntries.Set(417)
	m.InputLength.Observe(24)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Classifications.WithLabelValues("Positive")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Classifications.WithLabelValues("Negative")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("too_long")))
	assert.Equal(t, 417.0, testutil.ToFloat64(m.LexiconEntries))
	assert.Greater(t, testutil.CollectAndCount(m.InputLength), 0)
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := NewRegistry()
	m := NewHTTPMetrics(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/analyzer", func(c *gin.Context) { c.JSON(http.StatusOK, "Positive") })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyzer", strings.NewReader(`{}`)))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodPost, "/analyzer", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlightGauge))
}
