package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/middleware"
	"github.com/lukaszlop/ketoggler/internal/service"
)

// Dependencies is everything RegisterRoutes wires into the handlers
type Dependencies struct {
	Recipes   service.IRecipeService
	Favorites service.IFavoriteService
	Profiles  service.IProfileService
	Tokens    middleware.TokenValidator

	// HealthCheck reports whether the datastore is reachable
	HealthCheck func(ctx context.Context) error

	AuthRequired  bool
	DefaultUserID string
	// CreateLimiter may be nil to disable the recipe creation limit
	CreateLimiter middleware.Limiter

	Log logrus.FieldLogger
}
