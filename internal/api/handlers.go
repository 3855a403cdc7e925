package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/middleware"
	"github.com/lukaszlop/ketoggler/internal/validation"
)

// HealthCheck returns a handler reporting the datastore status
func HealthCheck(check func(ctx context.Context) error, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := check(c.Request.Context()); err != nil {
			logging.FromContext(c.Request.Context(), log).WithError(err).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	validation.Register()

	// unversioned, no auth
	router.GET("/health", HealthCheck(deps.HealthCheck, deps.Log))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	if deps.AuthRequired {
		v1.Use(middleware.AuthMiddleware(deps.Tokens))
	} else {
		v1.Use(middleware.Identity(deps.Tokens, false, deps.DefaultUserID))
	}

	var createLimit []gin.HandlerFunc
	if deps.CreateLimiter != nil {
		createLimit = append(createLimit, middleware.RateLimit(deps.CreateLimiter, deps.Log))
	}

	NewRecipeHandler(deps.Recipes, deps.Log).RegisterRoutes(v1, createLimit...)
	NewFavoriteHandler(deps.Favorites, deps.Log).RegisterRoutes(v1)
	NewProfileHandler(deps.Profiles, deps.Log).RegisterRoutes(v1)
}
