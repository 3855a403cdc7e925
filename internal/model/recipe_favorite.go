package model

import "time"

type Favorite struct {
	UserID      string    `gorm:"type:text;primaryKey" json:"user_id"`
	RecipeID    uint      `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	FavoritedAt time.Time `gorm:"autoCreateTime" json:"favorited_at"`
	Recipe      *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
