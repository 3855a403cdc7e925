package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/testhelpers"
	"github.com/lukaszlop/ketoggler/internal/types"
)

const (
	testOwner = "00000000-0000-0000-0000-000000000001"
	otherUser = "00000000-0000-0000-0000-000000000002"
)

func setupRecipeService(t *testing.T) (*RecipeService, *gorm.DB, testhelpers.Catalog) {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	catalog := testhelpers.SeedCatalog(t, db)
	return NewRecipeService(db, logging.Discard()), db, catalog
}

func f64(v float64) *float64 { return &v }

func recipeRequest(title string, calories, carbs float64, allergens []string, ingredientIDs ...uint) *types.CreateRecipeRequest {
	req := &types.CreateRecipeRequest{
		Title:       title,
		Description: "A recipe used in service tests",
		Macronutrients: &types.MacronutrientsInput{
			Calories: f64(calories),
			Protein:  f64(20),
			Carbs:    f64(carbs),
			Fats:     f64(30),
		},
		Allergens: allergens,
	}
	for i, id := range ingredientIDs {
		req.Ingredients = append(req.Ingredients, types.RecipeIngredientInput{
			IngredientID: int64(id),
			Quantity:     f64(float64(i + 1)),
			Unit:         "g",
		})
	}
	return req
}

func mustCreate(t *testing.T, svc *RecipeService, owner string, req *types.CreateRecipeRequest) *types.RecipeDto {
	t.Helper()
	dto, err := svc.CreateRecipe(context.Background(), owner, req)
	require.NoError(t, err)
	return dto
}
