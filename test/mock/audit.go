// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jackoske/AllGoGrand/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AccessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, from, to time.Time, wallet, city string) ([]audit.AccessLog, error) {
	args := m.Called(ctx, from, to, wallet, city)
	return args.Get(0).([]audit.AccessLog), args.Error(1)
}
