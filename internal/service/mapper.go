package service

import (
	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/types"
)

// ToRecipeDto flattens a recipe loaded with its associations. Missing units
// render as "" and allergens is never nil.
func ToRecipeDto(r *model.Recipe) types.RecipeDto {
	dto := types.RecipeDto{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		UserID:      r.UserID,
		Ingredients: make([]types.IngredientDto, 0, len(r.Ingredients)),
		Allergens:   make([]string, 0, len(r.Allergens)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	for _, ri := range r.Ingredients {
		ing := types.IngredientDto{ID: ri.IngredientID, Quantity: ri.Quantity}
		if ri.Ingredient != nil {
			ing.Name = ri.Ingredient.Name
		}
		if ri.Unit != nil {
			ing.Unit = *ri.Unit
		}
		dto.Ingredients = append(dto.Ingredients, ing)
	}

	if m := r.Macronutrients; m != nil {
		dto.Macronutrients = types.MacronutrientsDto{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fats:     m.Fats,
		}
	}

	for _, ra := range r.Allergens {
		if ra.Allergen != nil {
			dto.Allergens = append(dto.Allergens, ra.Allergen.Name)
		}
	}

	return dto
}

func toVersionDto(v model.RecipeVersion) types.RecipeVersionDto {
	dto := types.RecipeVersionDto{
		VersionID:     v.VersionID,
		VersionType:   string(v.VersionType),
		VersionNumber: v.VersionNumber,
		RecordedAt:    v.RecordedAt,
	}
	if len(v.Changes) > 0 {
		dto.Changes = []byte(v.Changes)
	}
	return dto
}

func toProfileDto(p *model.UserProfile) types.UserProfileDto {
	dto := types.UserProfileDto{
		UserID:    p.UserID,
		Allergens: make([]string, 0, len(p.Allergens)),
		CreatedAt: p.CreatedAt,
	}
	if p.DietaryPreferences != nil {
		dto.DietaryPreferences = *p.DietaryPreferences
	}
	for _, ua := range p.Allergens {
		if ua.Allergen != nil {
			dto.Allergens = append(dto.Allergens, ua.Allergen.Name)
		}
	}
	return dto
}
