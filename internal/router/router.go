package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lukaszlop/ketoggler/internal/api"
	"github.com/lukaszlop/ketoggler/internal/middleware"
)

// SetupRouter builds the engine with the global middleware chain and every
// API route. Recovery sits inside Logger so recovered panics are logged
// with their request id and final status.
func SetupRouter(corsOrigins []string, deps api.Dependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.Metrics(),
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(corsOrigins),
	)

	api.RegisterRoutes(router, deps)
	return router
}
