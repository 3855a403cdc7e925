package types

// RecipeIngredientInput is one ingredient line of a create request. Quantity
// is a pointer so a zero reports the gt rule rather than "required".
type RecipeIngredientInput struct {
	IngredientID int64    `json:"ingredient_id" binding:"required,gt=0"`
	Quantity     *float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string   `json:"unit" binding:"required,max=10"`
}

// MacronutrientsInput uses pointers so that an explicit zero passes "required"
type MacronutrientsInput struct {
	Calories *float64 `json:"calories" binding:"required,min=0,max=10000"`
	Protein  *float64 `json:"protein" binding:"required,min=0,max=1000"`
	Carbs    *float64 `json:"carbs" binding:"required,min=0,max=1000"`
	Fats     *float64 `json:"fats" binding:"required,min=0,max=1000"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title          string                  `json:"title" binding:"required,min=3,max=100"`
	Description    string                  `json:"description" binding:"required,min=10,max=1000"`
	Ingredients    []RecipeIngredientInput `json:"ingredients" binding:"required,min=1,max=100,unique=IngredientID,dive"`
	Macronutrients *MacronutrientsInput    `json:"macronutrients" binding:"required"`
	Allergens      []string                `json:"allergens" binding:"required,max=50,dive,min=1,max=50"`
}

// ListRecipesQuery holds the coerced query string of GET /recipes. Allergens
// is filled from the comma separated allergens parameter. Page and PageSize
// are capped at MaxInt32 so their product fits in an int64 offset.
type ListRecipesQuery struct {
	Kcal      *float64 `form:"kcal" json:"kcal,omitempty" binding:"omitempty,gt=0"`
	MaxCarbs  *float64 `form:"max_carbs" json:"max_carbs,omitempty" binding:"omitempty,gte=0"`
	Allergens []string `form:"-" json:"allergens,omitempty"`
	Random    bool     `form:"random" json:"random,omitempty"`
	Page      int      `form:"page" json:"page" binding:"gt=0,lte=2147483647"`
	PageSize  int      `form:"page_size" json:"page_size" binding:"gt=0,lte=2147483647"`
}

// AddFavoriteCommand is the body of POST /users/me/favorites
type AddFavoriteCommand struct {
	RecipeID int64 `json:"recipe_id" binding:"required,gt=0"`
}

// UpdateUserProfileCommand is the body of PUT /profile
type UpdateUserProfileCommand struct {
	DietaryPreferences string   `json:"dietary_preferences" binding:"max=500"`
	Allergens          []string `json:"allergens" binding:"required,max=50,dive,min=1,max=50"`
}
