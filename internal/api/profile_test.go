package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/types"
)

func TestProfileEndpoints(t *testing.T) {
	r, _, _ := setupDBRouter(t)

	w := request(t, r, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, r, http.MethodPut, "/api/v1/profile", map[string]any{
		"dietary_preferences": "keto",
		"allergens":           []string{"Nuts", "Unknown"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile := decode[types.UserProfileDto](t, w)
	assert.Equal(t, testUser, profile.UserID)
	assert.Equal(t, []string{"Nuts"}, profile.Allergens)

	w = request(t, r, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "keto", decode[types.UserProfileDto](t, w).DietaryPreferences)
}

func TestUpdateProfileValidation(t *testing.T) {
	r, _ := setupMockRouter(t)

	w := request(t, r, http.MethodPut, "/api/v1/profile", map[string]any{
		"allergens": []string{""},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"allergens":["String must contain at least 1 character(s)"]`)
}

func TestGetProfileServerError(t *testing.T) {
	r, m := setupMockRouter(t)
	m.profiles.On("GetProfile", mock.Anything, testUser).Return(nil, errors.New("boom")).Once()

	w := request(t, r, http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFavoriteEndpoints(t *testing.T) {
	r, _, cat := setupDBRouter(t)

	w := request(t, r, http.MethodPost, "/api/v1/recipes", recipeBody("Favorite me", cat.Ingredients["Cream"].ID))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[types.RecipeDto](t, w).ID

	w = request(t, r, http.MethodPost, "/api/v1/users/me/favorites", map[string]any{"recipe_id": id})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Favorite me", decode[types.FavoriteDto](t, w).Title)

	w = request(t, r, http.MethodGet, "/api/v1/users/me/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[types.FavoritesResponse](t, w).Favorites, 1)

	w = request(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/users/me/favorites/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/users/me/favorites/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, r, http.MethodPost, "/api/v1/users/me/favorites", map[string]any{"recipe_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddFavoriteValidation(t *testing.T) {
	r, _ := setupMockRouter(t)

	w := request(t, r, http.MethodPost, "/api/v1/users/me/favorites", map[string]any{"recipe_id": "seven"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Expected integer, received string")
}

func TestRemoveFavoriteMapsNotFound(t *testing.T) {
	r, m := setupMockRouter(t)
	m.favorites.On("RemoveFavorite", mock.Anything, testUser, uint(4)).Return(service.ErrFavoriteNotFound).Once()

	w := request(t, r, http.MethodDelete, "/api/v1/users/me/favorites/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"NotFound"}`, w.Body.String())
}
