package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/lukaszlop/ketoggler/internal/api"
	"github.com/lukaszlop/ketoggler/internal/database"
	"github.com/lukaszlop/ketoggler/internal/middleware"
	"github.com/lukaszlop/ketoggler/internal/router"
	"github.com/lukaszlop/ketoggler/internal/server"
	"github.com/lukaszlop/ketoggler/internal/service"
)

func serveCommand() *cobra.Command {
	var migrate bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return e.serve(ctx, migrate)
		},
	}

	command.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return command
}

func (e *env) serve(ctx context.Context, migrate bool) error {
	db, err := e.openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if migrate {
		if err := e.migrator(db).Up(ctx); err != nil {
			return err
		}
	}

	var redisClient *redis.Client
	if e.cfg.RedisEnabled() {
		// continue with the in-process limiter if redis is not reachable
		redisClient, err = database.NewRedisClient(e.cfg, e.log)
		if err != nil {
			e.log.WithError(err).Warn("redis unavailable, using local rate limiter")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	deps := api.Dependencies{
		Recipes:   service.NewRecipeService(db, e.log),
		Favorites: service.NewFavoriteService(db, e.log),
		Profiles:  service.NewProfileService(db, e.log),
		Tokens:    service.NewTokenService(e.cfg.JWTSecret, defaultTokenTTL),
		HealthCheck: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		AuthRequired:  e.cfg.AuthRequired,
		DefaultUserID: e.cfg.DefaultUserID,
		CreateLimiter: middleware.NewRecipeCreationLimiter(redisClient, e.cfg.RecipeCreateLimit),
		Log:           e.log,
	}
	if !e.cfg.AuthRequired {
		e.log.WithField("default_user_id", e.cfg.DefaultUserID).Warn("authentication is optional, anonymous requests use the default user")
	}

	engine := router.SetupRouter(e.cfg.CORSOrigins, deps)
	return server.New(e.cfg, engine, e.log).Run(ctx)
}
