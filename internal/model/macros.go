package model

// Macronutrients represents nutrition information for a recipe, one row per recipe.
type Macronutrients struct {
	RecipeID uint    `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	Calories float64 `gorm:"not null" json:"calories"`
	Protein  float64 `gorm:"not null" json:"protein"`
	Carbs    float64 `gorm:"not null" json:"carbs"`
	Fats     float64 `gorm:"not null" json:"fats"`
}

func (Macronutrients) TableName() string {
	return "macronutrients"
}
