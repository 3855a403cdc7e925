package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/types"
)

func TestToRecipeDto(t *testing.T) {
	cup := "cup"
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	recipe := &model.Recipe{
		ID:          7,
		Title:       "Soup",
		Description: "A warm tomato soup recipe",
		UserID:      "user-abc",
		CreatedAt:   now,
		UpdatedAt:   now.Add(time.Hour),
		Macronutrients: &model.Macronutrients{
			RecipeID: 7, Calories: 200, Protein: 5, Carbs: 30, Fats: 4,
		},
		Ingredients: []model.RecipeIngredient{
			{RecipeID: 7, IngredientID: 1, Quantity: 2, Unit: &cup, Ingredient: &model.Ingredient{ID: 1, Name: "Tomato"}},
			{RecipeID: 7, IngredientID: 2, Quantity: 1, Ingredient: &model.Ingredient{ID: 2, Name: "Salt"}},
		},
		Allergens: []model.RecipeAllergen{
			{RecipeID: 7, AllergenID: 3, Allergen: &model.Allergen{ID: 3, Name: "gluten"}},
		},
	}

	dto := ToRecipeDto(recipe)

	assert.Equal(t, types.RecipeDto{
		ID:          7,
		Title:       "Soup",
		Description: "A warm tomato soup recipe",
		UserID:      "user-abc",
		Ingredients: []types.IngredientDto{
			{ID: 1, Name: "Tomato", Quantity: 2, Unit: "cup"},
			{ID: 2, Name: "Salt", Quantity: 1, Unit: ""},
		},
		Macronutrients: types.MacronutrientsDto{Calories: 200, Protein: 5, Carbs: 30, Fats: 4},
		Allergens:      []string{"gluten"},
		CreatedAt:      now,
		UpdatedAt:      now.Add(time.Hour),
	}, dto)

	// deterministic for identical input
	assert.Equal(t, dto, ToRecipeDto(recipe))
}

func TestToRecipeDtoEmptyCollections(t *testing.T) {
	dto := ToRecipeDto(&model.Recipe{ID: 1, UserID: "u"})
	assert.NotNil(t, dto.Ingredients)
	assert.NotNil(t, dto.Allergens)
	assert.Empty(t, dto.Allergens)
	assert.Equal(t, types.MacronutrientsDto{}, dto.Macronutrients)
}
