// test/mock/verify.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockVerifier is a mock implementation of verify.Verifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) IsAuthorized(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}
