package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/types"
)

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

var _ service.IProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfile(ctx context.Context, owner string) (*types.UserProfileDto, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfileDto), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, owner string, cmd *types.UpdateUserProfileCommand) (*types.UserProfileDto, error) {
	args := m.Called(ctx, owner, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfileDto), args.Error(1)
}

// MockFavoriteService is a mock implementation of the FavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

var _ service.IFavoriteService = (*MockFavoriteService)(nil)

func (m *MockFavoriteService) AddFavorite(ctx context.Context, owner string, recipeID uint) (*types.FavoriteDto, error) {
	args := m.Called(ctx, owner, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FavoriteDto), args.Error(1)
}

func (m *MockFavoriteService) ListFavorites(ctx context.Context, owner string) (*types.FavoritesResponse, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FavoritesResponse), args.Error(1)
}

func (m *MockFavoriteService) RemoveFavorite(ctx context.Context, owner string, recipeID uint) error {
	args := m.Called(ctx, owner, recipeID)
	return args.Error(0)
}
