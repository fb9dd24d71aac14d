// test/mock/ledger.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jackoske/AllGoGrand/ledger"
)

// MockGateway is a mock implementation of ledger.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetBalance(ctx context.Context, address string) (uint64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGateway) GetHoldings(ctx context.Context, address string, assetID uint64) ([]ledger.Holding, error) {
	args := m.Called(ctx, address, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Holding), args.Error(1)
}

func (m *MockGateway) SubmitAndConfirm(ctx context.Context, stxn *ledger.SignedTxn, maxRounds uint64) (*ledger.ConfirmedTxn, error) {
	args := m.Called(ctx, stxn, maxRounds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ConfirmedTxn), args.Error(1)
}

func (m *MockGateway) Status(ctx context.Context) (*ledger.NodeStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.NodeStatus), args.Error(1)
}

func (m *MockGateway) SuggestedParams(ctx context.Context) (*ledger.TxnParams, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.TxnParams), args.Error(1)
}
