package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/lukaszlop/ketoggler/internal/logging"
)

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(logging.Discard()))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	before := testutil.ToFloat64(panicRecoveries)

	w := do(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"ServerError","message":"Internal server error"}`, w.Body.String())
	assert.Equal(t, before+1, testutil.ToFloat64(panicRecoveries))
}

func TestRecoveryPassesThrough(t *testing.T) {
	r := newEngine(Recovery(logging.Discard()))
	w := do(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
