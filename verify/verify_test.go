package verify_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/ledger"
	"github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/test/mock"
	"github.com/jackoske/AllGoGrand/verify"
)

const testAddress = "WALLET7XAMPLE"

func TestMain(m *testing.M) {
	logging.InitLogger("")
	os.Exit(m.Run())
}

func TestBalanceThresholdAuthorizes(t *testing.T) {
	gw := new(mock.MockGateway)
	gw.On("GetBalance", tmock.Anything, testAddress).Return(uint64(6_000_000), nil)

	policy := verify.NewBalanceThresholdPolicy(gw, 5_000_000)
	authorized, err := policy.IsAuthorized(context.Background(), testAddress)
	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestBalanceThresholdBoundary(t *testing.T) {
	cases := map[string]struct {
		balance    uint64
		authorized bool
	}{
		"exactly at threshold": {5_000_000, true},
		"one below threshold":  {4_999_999, false},
		"zero balance":         {0, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			gw := new(mock.MockGateway)
			gw.On("GetBalance", tmock.Anything, testAddress).Return(tc.balance, nil)

			policy := verify.NewBalanceThresholdPolicy(gw, 5_000_000)
			authorized, err := policy.IsAuthorized(context.Background(), testAddress)
			require.NoError(t, err)
			assert.Equal(t, tc.authorized, authorized)
		})
	}
}

func TestBalanceThresholdFailsClosed(t *testing.T) {
	gw := new(mock.MockGateway)
	gw.On("GetBalance", tmock.Anything, testAddress).Return(uint64(0), errors.New("node down"))

	policy := verify.NewBalanceThresholdPolicy(gw, 5_000_000)
	authorized, err := policy.IsAuthorized(context.Background(), testAddress)
	assert.False(t, authorized)
	assert.ErrorIs(t, err, apperrors.ErrVerificationFailed)
}

func TestAssetHoldingPolicy(t *testing.T) {
	gw := new(mock.MockGateway)
	gw.On("GetHoldings", tmock.Anything, testAddress, uint64(42)).
		Return([]ledger.Holding{{AssetID: 42, Amount: 1}}, nil)

	policy := verify.NewAssetHoldingPolicy(gw, 42)
	authorized, err := policy.IsAuthorized(context.Background(), testAddress)
	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestAssetHoldingPolicyNoHoldings(t *testing.T) {
	gw := new(mock.MockGateway)
	gw.On("GetHoldings", tmock.Anything, testAddress, uint64(42)).Return([]ledger.Holding{}, nil)

	policy := verify.NewAssetHoldingPolicy(gw, 42)
	authorized, err := policy.IsAuthorized(context.Background(), testAddress)
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestAssetHoldingPolicyFailsClosed(t *testing.T) {
	gw := new(mock.MockGateway)
	gw.On("GetHoldings", tmock.Anything, testAddress, uint64(42)).
		Return(nil, errors.New("node down"))

	policy := verify.NewAssetHoldingPolicy(gw, 42)
	authorized, err := policy.IsAuthorized(context.Background(), testAddress)
	assert.False(t, authorized)
	assert.ErrorIs(t, err, apperrors.ErrVerificationFailed)
}
