package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	r := newEngine(Metrics())
	ok := httpRequestsTotal.WithLabelValues(http.MethodGet, "/whoami", "200")
	missing := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	beforeOK, beforeMissing := testutil.ToFloat64(ok), testutil.ToFloat64(missing)

	do(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	do(r, httptest.NewRequest(http.MethodGet, "/nowhere/123", nil))

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeMissing+1, testutil.ToFloat64(missing))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}
