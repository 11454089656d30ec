package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loyalty-rewards/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.Released(domain.ReleaseConfirmed)
	r.Released(domain.ReleaseConfirmed)
	r.Released(domain.ReleaseSprungBack)
	r.Rejected("PAY_001")
	r.Debited(domain.BucketDrink)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.gestures.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gestures.WithLabelValues("sprung_back")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejections.WithLabelValues("PAY_001")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.debits.WithLabelValues("drink")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.debits.WithLabelValues("wallet")))
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	r := NewRecorder()
	router := gin.New()
	router.Use(r.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(r.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("/ping", "GET", "200")))

	r.Released(domain.ReleaseIgnored)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `loyalty_slider_gestures_total{outcome="ignored"} 1`), body)
	assert.Contains(t, body, "loyalty_http_requests_total")
}
