// test/mock/service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jackoske/AllGoGrand/model"
)

// MockBrokerService is a mock implementation of service.IBrokerService
type MockBrokerService struct {
	mock.Mock
}

func (m *MockBrokerService) Handle(ctx context.Context, request model.AccessRequest) (*model.AccessDecision, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessDecision), args.Error(1)
}

// MockTokenService is a mock implementation of service.ITokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ListTokens(ctx context.Context, wallet string) (*model.TokensResponse, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokensResponse), args.Error(1)
}
