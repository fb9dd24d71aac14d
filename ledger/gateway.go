// ledger/gateway.go
package ledger

import "context"

// Holding is one asset position on an account. Only positive amounts are
// ever returned by the gateway.
type Holding struct {
	AssetID uint64 `json:"asset-id"`
	Amount  uint64 `json:"amount"`
}

// NodeStatus is a snapshot of the ledger node state.
type NodeStatus struct {
	LastRound uint64 `json:"last-round"`
}

// TxnParams are the suggested parameters for building a transaction.
type TxnParams struct {
	Fee         uint64 `json:"fee"`
	FirstRound  uint64 `json:"last-round"`
	GenesisID   string `json:"genesis-id"`
	GenesisHash string `json:"genesis-hash"`
}

// ConfirmedTxn reports a transaction that was accepted into a block.
type ConfirmedTxn struct {
	TxID           string
	ConfirmedRound uint64
}

// Gateway is the thin query/submit facade over the external account ledger.
// It performs no retries; callers decide retry policy.
type Gateway interface {
	// GetBalance returns the account balance in microunits.
	GetBalance(ctx context.Context, address string) (uint64, error)

	// GetHoldings returns the account's positive holdings of assetID.
	GetHoldings(ctx context.Context, address string, assetID uint64) ([]Holding, error)

	// SubmitAndConfirm submits a signed transaction and blocks until it is
	// confirmed or maxRounds ledger rounds have elapsed.
	SubmitAndConfirm(ctx context.Context, stxn *SignedTxn, maxRounds uint64) (*ConfirmedTxn, error)

	// Status returns the current node status.
	Status(ctx context.Context) (*NodeStatus, error)

	// SuggestedParams returns parameters for building a new transaction.
	SuggestedParams(ctx context.Context) (*TxnParams, error)
}
