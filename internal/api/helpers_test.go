package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/mocks"
	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/testhelpers"
)

const testUser = "user-1"

type mockSet struct {
	recipes   *mocks.MockRecipeService
	favorites *mocks.MockFavoriteService
	profiles  *mocks.MockProfileService
	tokens    *mocks.MockTokenService
}

func newRouter(deps Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, deps)
	return r
}

func baseDeps() Dependencies {
	return Dependencies{
		HealthCheck:   func(context.Context) error { return nil },
		AuthRequired:  false,
		DefaultUserID: testUser,
		Log:           logging.Discard(),
	}
}

// setupMockRouter runs as testUser with every service mocked
func setupMockRouter(t *testing.T) (*gin.Engine, mockSet) {
	t.Helper()
	m := mockSet{
		recipes:   new(mocks.MockRecipeService),
		favorites: new(mocks.MockFavoriteService),
		profiles:  new(mocks.MockProfileService),
		tokens:    new(mocks.MockTokenService),
	}
	t.Cleanup(func() {
		m.recipes.AssertExpectations(t)
		m.favorites.AssertExpectations(t)
		m.profiles.AssertExpectations(t)
		m.tokens.AssertExpectations(t)
	})

	deps := baseDeps()
	deps.Recipes, deps.Favorites, deps.Profiles, deps.Tokens = m.recipes, m.favorites, m.profiles, m.tokens
	return newRouter(deps), m
}

// setupDBRouter serves real services over a seeded in-memory database
func setupDBRouter(t *testing.T, tweak ...func(*Dependencies)) (*gin.Engine, *gorm.DB, testhelpers.Catalog) {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	catalog := testhelpers.SeedCatalog(t, db)
	log := logging.Discard()

	deps := baseDeps()
	deps.Recipes = service.NewRecipeService(db, log)
	deps.Favorites = service.NewFavoriteService(db, log)
	deps.Profiles = service.NewProfileService(db, log)
	deps.Tokens = new(mocks.MockTokenService)
	for _, fn := range tweak {
		fn(&deps)
	}
	return newRouter(deps), db, catalog
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func request(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return serve(r, newJSONRequest(t, method, target, body))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func recipeBody(title string, ingredientIDs ...uint) map[string]any {
	ingredients := make([]map[string]any, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ingredients = append(ingredients, map[string]any{"ingredient_id": id, "quantity": 1, "unit": "g"})
	}
	return map[string]any{
		"title":          title,
		"description":    "A description long enough",
		"ingredients":    ingredients,
		"macronutrients": map[string]any{"calories": 500, "protein": 20, "carbs": 5, "fats": 40},
		"allergens":      []string{},
	}
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, key string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	raw, ok := fields[key]
	require.True(t, ok, "missing field %q", key)
	return raw
}
