package model

// Ingredient is a catalog entry referenced by recipes
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// Allergen is a catalog entry referenced by recipes and user profiles
type Allergen struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

func (Allergen) TableName() string {
	return "allergens"
}
