package types

import "time"

// UserProfileDto is returned by GET and PUT /profile
type UserProfileDto struct {
	UserID             string    `json:"user_id"`
	DietaryPreferences string    `json:"dietary_preferences"`
	Allergens          []string  `json:"allergens"`
	CreatedAt          time.Time `json:"created_at"`
}

type FavoriteDto struct {
	RecipeID    uint      `json:"recipe_id"`
	Title       string    `json:"title"`
	FavoritedAt time.Time `json:"favorited_at"`
}

type FavoritesResponse struct {
	Favorites []FavoriteDto `json:"favorites"`
}
