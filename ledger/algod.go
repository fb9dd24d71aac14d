// ledger/algod.go
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	logger "github.com/jackoske/AllGoGrand/logging"
)

const tokenHeader = "X-Algo-API-Token"

// AlgodClient is the reference Gateway implementation over an algod-style
// REST API. It holds no mutable state and is safe for concurrent use.
type AlgodClient struct {
	baseURL   string
	authToken string
	http      *http.Client

	// pollInterval controls how often SubmitAndConfirm re-checks the
	// pending transaction. Shortened in tests.
	pollInterval time.Duration
}

// NewAlgodClient creates a gateway client for the node at baseURL.
func NewAlgodClient(baseURL, authToken string) *AlgodClient {
	return &AlgodClient{
		baseURL:      baseURL,
		authToken:    authToken,
		http:         &http.Client{Timeout: 10 * time.Second},
		pollInterval: time.Second,
	}
}

type accountInfo struct {
	Amount uint64    `json:"amount"`
	Assets []Holding `json:"assets"`
}

// GetBalance returns the account balance in microunits.
func (c *AlgodClient) GetBalance(ctx context.Context, address string) (uint64, error) {
	info, err := c.accountInfo(ctx, address)
	if err != nil {
		return 0, err
	}
	return info.Amount, nil
}

// GetHoldings returns the account's positive holdings of assetID.
func (c *AlgodClient) GetHoldings(ctx context.Context, address string, assetID uint64) ([]Holding, error) {
	info, err := c.accountInfo(ctx, address)
	if err != nil {
		return nil, err
	}
	var held []Holding
	for _, asset := range info.Assets {
		if asset.AssetID == assetID && asset.Amount > 0 {
			held = append(held, asset)
		}
	}
	return held, nil
}

// Status returns the current node status.
func (c *AlgodClient) Status(ctx context.Context) (*NodeStatus, error) {
	var status NodeStatus
	if err := c.get(ctx, "/v2/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SuggestedParams returns parameters for building a new transaction.
func (c *AlgodClient) SuggestedParams(ctx context.Context) (*TxnParams, error) {
	var params TxnParams
	if err := c.get(ctx, "/v2/transactions/params", &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// SubmitAndConfirm submits stxn and polls the pending pool until the
// transaction is confirmed or maxRounds rounds pass the submission round.
func (c *AlgodClient) SubmitAndConfirm(ctx context.Context, stxn *SignedTxn, maxRounds uint64) (*ConfirmedTxn, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return nil, err
	}
	deadline := status.LastRound + maxRounds

	if err := c.submit(ctx, stxn); err != nil {
		return nil, err
	}

	for {
		pending, err := c.pendingInfo(ctx, stxn.TxID)
		if err != nil {
			return nil, err
		}
		if pending.PoolError != "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrRejectedByLedger, pending.PoolError)
		}
		if pending.ConfirmedRound > 0 {
			logger.Info("Transaction confirmed",
				zap.String("txid", stxn.TxID),
				zap.Uint64("round", pending.ConfirmedRound))
			return &ConfirmedTxn{TxID: stxn.TxID, ConfirmedRound: pending.ConfirmedRound}, nil
		}

		status, err = c.Status(ctx)
		if err != nil {
			return nil, err
		}
		if status.LastRound >= deadline {
			return nil, fmt.Errorf("%w: waited %d rounds for %s", apperrors.ErrNotConfirmed, maxRounds, stxn.TxID)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", apperrors.ErrLedgerUnavailable, ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
}

type pendingTxn struct {
	ConfirmedRound uint64 `json:"confirmed-round"`
	PoolError      string `json:"pool-error"`
}

func (c *AlgodClient) accountInfo(ctx context.Context, address string) (*accountInfo, error) {
	var info accountInfo
	if err := c.get(ctx, "/v2/accounts/"+address, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *AlgodClient) pendingInfo(ctx context.Context, txid string) (*pendingTxn, error) {
	var pending pendingTxn
	if err := c.get(ctx, "/v2/transactions/pending/"+txid, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (c *AlgodClient) submit(ctx context.Context, stxn *SignedTxn) error {
	body, err := json.Marshal(stxn)
	if err != nil {
		return fmt.Errorf("failed to encode signed transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/transactions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrLedgerUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: node rejected submission", apperrors.ErrRejectedByLedger)
	case resp.StatusCode >= 300:
		return fmt.Errorf("%w: node returned %d", apperrors.ErrLedgerUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *AlgodClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrLedgerUnavailable, err)
	}
	req.Header.Set(tokenHeader, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: node returned %d for %s", apperrors.ErrLedgerUnavailable, resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response for %s: %v", apperrors.ErrLedgerUnavailable, path, err)
	}
	return nil
}
