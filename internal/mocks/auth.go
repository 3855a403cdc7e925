package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/lukaszlop/ketoggler/internal/service"
	"github.com/lukaszlop/ketoggler/internal/types"
)

// MockTokenService is a mock implementation of the TokenService interface
type MockTokenService struct {
	mock.Mock
}

var _ service.ITokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
