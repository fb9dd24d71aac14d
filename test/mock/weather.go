// test/mock/weather.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jackoske/AllGoGrand/model"
)

// MockProvider is a mock implementation of weather.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Current(ctx context.Context, city string) (*model.WeatherData, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherData), args.Error(1)
}
