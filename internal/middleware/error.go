package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/logging"
)

// ErrorResponse is the body written by the middlewares in this package
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Recovery turns a panic in a later handler into a 500 JSON response
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				panicRecoveries.Inc()
				logging.FromContext(c.Request.Context(), log).WithFields(logrus.Fields{
					"panic":  fmt.Sprintf("%v", r),
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "ServerError",
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
