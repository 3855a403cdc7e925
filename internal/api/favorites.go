package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/types"
	"github.com/lukaszlop/ketoggler/internal/validation"
)

// FavoriteHandler serves the caller's favorite recipes
type FavoriteHandler struct {
	favorites service.IFavoriteService
	log       logrus.FieldLogger
}

func NewFavoriteHandler(favorites service.IFavoriteService, log logrus.FieldLogger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, log: log}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/users/me/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:recipe_id", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	favorites, err := h.favorites.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var cmd types.AddFavoriteCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondError(c, h.log, validation.FromBindingError(err))
		return
	}

	favorite, err := h.favorites.AddFavorite(c.Request.Context(), userID, uint(cmd.RecipeID))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
