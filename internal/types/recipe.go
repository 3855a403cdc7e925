package types

import (
	"encoding/json"
	"time"
)

type IngredientDto struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type MacronutrientsDto struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// RecipeDto is the flattened recipe returned by every recipe endpoint
type RecipeDto struct {
	ID             uint              `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	UserID         string            `json:"user_id"`
	Ingredients    []IngredientDto   `json:"ingredients"`
	Macronutrients MacronutrientsDto `json:"macronutrients"`
	Allergens      []string          `json:"allergens"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

type PagedRecipesResponse struct {
	Data       []RecipeDto `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type RecipeVersionDto struct {
	VersionID     uint            `json:"version_id"`
	VersionType   string          `json:"version_type"`
	VersionNumber int             `json:"version_number"`
	Changes       json.RawMessage `json:"changes"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

type RecipeVersionsResponse struct {
	Versions []RecipeVersionDto `json:"versions"`
}
