package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/types"
	"github.com/lukaszlop/ketoggler/internal/validation"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	log     logrus.FieldLogger
}

func NewRecipeHandler(recipes service.IRecipeService, log logrus.FieldLogger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

// RegisterRoutes mounts the recipe endpoints. createLimit runs in front of
// POST /recipes only.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, createLimit ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/versions", h.ListVersions)
		recipes.POST("", append(createLimit, h.CreateRecipe)...)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, validation.FromBindingError(err))
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}

	q, err := validation.BindListQuery(c.Request.URL.Query())
	if err != nil {
		var verrs validation.Errors
		errors.As(err, &verrs)
		c.JSON(http.StatusBadRequest, ListErrorResponse{
			Error:   "Invalid query parameters",
			Details: verrs,
		})
		return
	}

	filter := service.NewRecipeFilter(userID, q)
	resp, err := h.recipes.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		logging.FromContext(c.Request.Context(), h.log).WithError(err).WithFields(filter.Fields()).Error("list recipes failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ListErrorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred while processing your request",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListVersions(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	versions, err := h.recipes.ListVersions(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}
