package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.OrderPlaced("cod")
	m.OrderPlaced("cod")
	m.PromoAttempt(true)
	m.PromoAttempt(false)
	m.PromoAttempt(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("cod")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PromoApplications.WithLabelValues("applied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PromoApplications.WithLabelValues("invalid")))

	rec := httptest.NewRecorder()
	MetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "dira_orders_placed_total")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("development", "debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger("production", "")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))

	_, err = NewLogger("production", "loud")
	assert.Error(t, err)
}
