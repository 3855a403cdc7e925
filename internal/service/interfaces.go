package service

import (
	"context"

	"github.com/lukaszlop/ketoggler/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, owner string, req *types.CreateRecipeRequest) (*types.RecipeDto, error)
	ListRecipes(ctx context.Context, filter RecipeFilter) (*types.PagedRecipesResponse, error)
	GetRecipe(ctx context.Context, owner string, id uint) (*types.RecipeDto, error)
	ListVersions(ctx context.Context, owner string, id uint) (*types.RecipeVersionsResponse, error)
}

// IFavoriteService defines the interface for favorite operations
type IFavoriteService interface {
	AddFavorite(ctx context.Context, owner string, recipeID uint) (*types.FavoriteDto, error)
	ListFavorites(ctx context.Context, owner string) (*types.FavoritesResponse, error)
	RemoveFavorite(ctx context.Context, owner string, recipeID uint) error
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, owner string) (*types.UserProfileDto, error)
	UpdateProfile(ctx context.Context, owner string, cmd *types.UpdateUserProfileCommand) (*types.UserProfileDto, error)
}

// ITokenService defines the interface for bearer token operations
type ITokenService interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
