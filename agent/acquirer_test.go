package agent_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackoske/AllGoGrand/agent"
	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/ledger"
	"github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/test/mock"
)

func TestMain(m *testing.M) {
	logging.InitLogger("")
	os.Exit(m.Run())
}

const tokenPriceMicro uint64 = 1_000_000

func testMarketplace(t *testing.T) *agent.Marketplace {
	t.Helper()
	sink, err := ledger.GenerateAccount()
	require.NoError(t, err)
	return agent.NewMarketplace(tokenPriceMicro, time.Hour, sink.Address)
}

func TestAcquireInsufficientFundsNeverSubmits(t *testing.T) {
	account, err := ledger.GenerateAccount()
	require.NoError(t, err)

	gw := new(mock.MockGateway)
	gw.On("GetBalance", tmock.Anything, account.Address).Return(uint64(500_000), nil)

	acquirer := agent.NewAcquirer(gw, testMarketplace(t), 0)
	attempt, err := acquirer.Acquire(context.Background(), account)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Equal(t, agent.OutcomeFailed, attempt.Outcome)

	// A doomed purchase never reaches the ledger's submit path.
	gw.AssertNotCalled(t, "SuggestedParams", tmock.Anything)
	gw.AssertNotCalled(t, "SubmitAndConfirm", tmock.Anything, tmock.Anything, tmock.Anything)
}

func TestAcquireConfirmedRecordsSale(t *testing.T) {
	account, err := ledger.GenerateAccount()
	require.NoError(t, err)
	market := testMarketplace(t)

	gw := new(mock.MockGateway)
	gw.On("GetBalance", tmock.Anything, account.Address).Return(uint64(5_000_000), nil)
	gw.On("SuggestedParams", tmock.Anything).Return(&ledger.TxnParams{Fee: 1000, FirstRound: 100}, nil)
	gw.On("SubmitAndConfirm", tmock.Anything, tmock.Anything, agent.DefaultConfirmRounds).
		Run(func(args tmock.Arguments) {
			stxn := args.Get(1).(*ledger.SignedTxn)
			assert.Equal(t, account.Address, stxn.Txn.Sender)
			assert.Equal(t, market.SinkAddress(), stxn.Txn.Receiver)
			assert.Equal(t, tokenPriceMicro, stxn.Txn.Amount)
		}).
		Return(&ledger.ConfirmedTxn{TxID: "TXID", ConfirmedRound: 105}, nil)

	acquirer := agent.NewAcquirer(gw, market, 0)
	attempt, err := acquirer.Acquire(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, agent.OutcomeConfirmed, attempt.Outcome)
	assert.Equal(t, uint64(105), attempt.ConfirmedRound)
	assert.Equal(t, uint64(1), market.TotalSales())
}

func TestAcquireUnconfirmedOutcome(t *testing.T) {
	account, err := ledger.GenerateAccount()
	require.NoError(t, err)
	market := testMarketplace(t)

	gw := new(mock.MockGateway)
	gw.On("GetBalance", tmock.Anything, account.Address).Return(uint64(5_000_000), nil)
	gw.On("SuggestedParams", tmock.Anything).Return(&ledger.TxnParams{Fee: 1000, FirstRound: 100}, nil)
	gw.On("SubmitAndConfirm", tmock.Anything, tmock.Anything, agent.DefaultConfirmRounds).
		Return(nil, fmt.Errorf("%w: waited 4 rounds", apperrors.ErrNotConfirmed))

	acquirer := agent.NewAcquirer(gw, market, 0)
	attempt, err := acquirer.Acquire(context.Background(), account)

	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)
	assert.Equal(t, agent.OutcomeUnconfirmed, attempt.Outcome)
	assert.NotEmpty(t, attempt.TxID)
	assert.Equal(t, uint64(0), market.TotalSales())
}

func TestAcquireLedgerErrorFailsAttempt(t *testing.T) {
	account, err := ledger.GenerateAccount()
	require.NoError(t, err)

	gw := new(mock.MockGateway)
	gw.On("GetBalance", tmock.Anything, account.Address).
		Return(uint64(0), errors.New("node unreachable"))

	acquirer := agent.NewAcquirer(gw, testMarketplace(t), 0)
	attempt, err := acquirer.Acquire(context.Background(), account)

	assert.Error(t, err)
	assert.Equal(t, agent.OutcomeFailed, attempt.Outcome)
}
