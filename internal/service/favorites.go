package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lukaszlop/ketoggler/internal/logging"
	"github.com/lukaszlop/ketoggler/internal/model"
	"github.com/lukaszlop/ketoggler/internal/types"
)

// FavoriteService manages a user's favorite recipes
type FavoriteService struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

var _ IFavoriteService = (*FavoriteService)(nil)

func NewFavoriteService(db *gorm.DB, log logrus.FieldLogger) *FavoriteService {
	return &FavoriteService{db: db, log: log}
}

// AddFavorite marks one of owner's recipes as favorite. Adding twice is a no-op.
func (s *FavoriteService) AddFavorite(ctx context.Context, owner string, recipeID uint) (*types.FavoriteDto, error) {
	db := s.db.WithContext(ctx)

	var recipe model.Recipe
	res := db.Select("id", "title").Where("id = ? AND user_id = ?", recipeID, owner).Limit(1).Find(&recipe)
	if res.Error != nil {
		return nil, fmt.Errorf("find recipe %d: %w", recipeID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}

	fav := model.Favorite{UserID: owner, RecipeID: recipeID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&fav).Error; err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	// re-read so a duplicate add reports the original timestamp
	if err := db.Where("user_id = ? AND recipe_id = ?", owner, recipeID).Take(&fav).Error; err != nil {
		return nil, fmt.Errorf("read favorite: %w", err)
	}

	logging.FromContext(ctx, s.log).WithField("recipe_id", recipeID).Debug("favorite added")
	return &types.FavoriteDto{RecipeID: recipe.ID, Title: recipe.Title, FavoritedAt: fav.FavoritedAt}, nil
}

// ListFavorites returns owner's favorites, newest first
func (s *FavoriteService) ListFavorites(ctx context.Context, owner string) (*types.FavoritesResponse, error) {
	var favs []model.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", owner).
		Order("favorited_at DESC").
		Order("recipe_id DESC").
		Find(&favs).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	resp := &types.FavoritesResponse{Favorites: make([]types.FavoriteDto, 0, len(favs))}
	for _, f := range favs {
		dto := types.FavoriteDto{RecipeID: f.RecipeID, FavoritedAt: f.FavoritedAt}
		if f.Recipe != nil {
			dto.Title = f.Recipe.Title
		}
		resp.Favorites = append(resp.Favorites, dto)
	}
	return resp, nil
}

// RemoveFavorite deletes one favorite of owner
func (s *FavoriteService) RemoveFavorite(ctx context.Context, owner string, recipeID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", owner, recipeID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return fmt.Errorf("remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
