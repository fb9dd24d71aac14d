// agent/acquirer.go
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/ledger"
	logger "github.com/jackoske/AllGoGrand/logging"
)

// FeeMarginMicro is the safety margin reserved for network fees on top of
// the token price.
const FeeMarginMicro uint64 = 100_000

// DefaultConfirmRounds bounds the confirmation wait for a purchase.
const DefaultConfirmRounds uint64 = 4

// Outcome classifies how an acquisition attempt ended.
type Outcome string

const (
	OutcomeConfirmed   Outcome = "confirmed"
	OutcomeUnconfirmed Outcome = "unconfirmed"
	OutcomeFailed      Outcome = "failed"
)

// Attempt records one acquisition attempt. The transaction id is the
// durable record; the Attempt itself only lives until its outcome is
// observed.
type Attempt struct {
	ID             string
	Account        string
	AmountMicro    uint64
	TxID           string
	ConfirmedRound uint64
	Outcome        Outcome
}

// Acquirer executes the settlement transaction that establishes a
// credential for an account. It never asserts authorization: after a
// confirmed purchase the caller must re-request and let the broker
// re-verify.
type Acquirer struct {
	gateway       ledger.Gateway
	market        *Marketplace
	confirmRounds uint64
}

func NewAcquirer(gateway ledger.Gateway, market *Marketplace, confirmRounds uint64) *Acquirer {
	if confirmRounds == 0 {
		confirmRounds = DefaultConfirmRounds
	}
	return &Acquirer{
		gateway:       gateway,
		market:        market,
		confirmRounds: confirmRounds,
	}
}

// Acquire purchases one token for account. The precondition check keeps
// doomed transactions away from the ledger's submit path entirely.
func (a *Acquirer) Acquire(ctx context.Context, account *ledger.Account) (*Attempt, error) {
	price := a.market.PriceMicro()
	attempt := &Attempt{
		ID:          uuid.NewString(),
		Account:     account.Address,
		AmountMicro: price,
		Outcome:     OutcomeFailed,
	}

	balance, err := a.gateway.GetBalance(ctx, account.Address)
	if err != nil {
		return attempt, err
	}
	if balance < price+FeeMarginMicro {
		return attempt, fmt.Errorf("%w: have %d microunits, need %d",
			apperrors.ErrInsufficientFunds, balance, price+FeeMarginMicro)
	}

	params, err := a.gateway.SuggestedParams(ctx)
	if err != nil {
		return attempt, err
	}

	txn := ledger.NewPaymentTxn(account.Address, a.market.SinkAddress(), price, params, []byte("weather token purchase"))
	stxn, err := txn.Sign(account)
	if err != nil {
		return attempt, err
	}
	attempt.TxID = stxn.TxID

	confirmed, err := a.gateway.SubmitAndConfirm(ctx, stxn, a.confirmRounds)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotConfirmed) {
			attempt.Outcome = OutcomeUnconfirmed
		}
		return attempt, err
	}

	attempt.ConfirmedRound = confirmed.ConfirmedRound
	attempt.Outcome = OutcomeConfirmed
	sales := a.market.RecordSale()

	logger.Info("Token purchase confirmed",
		zap.String("attemptId", attempt.ID),
		zap.String("txid", attempt.TxID),
		zap.Uint64("round", attempt.ConfirmedRound),
		zap.Uint64("totalSales", sales))
	return attempt, nil
}
