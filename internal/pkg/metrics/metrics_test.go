package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/courses", 200, 15*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/courses", 200, 5*time.Millisecond)
	c.RecordRequest(http.MethodPut, "/courses/:id", 403, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/courses", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("PUT", "/courses/:id", "403")))
}

func TestCollector_RecordAuthAttempt(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthAttempt(AuthSuccess)
	c.RecordAuthAttempt(AuthBadSecret)
	c.RecordAuthAttempt(AuthBadSecret)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.authAttempts.WithLabelValues(AuthSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.authAttempts.WithLabelValues(AuthBadSecret)))
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordAuthAttempt(AuthHeaderMissing)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, _ := io.ReadAll(w.Body)
	assert.True(t, strings.Contains(string(body), `courseapi_auth_attempts_total{outcome="header_missing"} 1`))
}
