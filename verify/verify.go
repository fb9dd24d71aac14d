// verify/verify.go
package verify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jackoske/AllGoGrand/config"
	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/ledger"
	logger "github.com/jackoske/AllGoGrand/logging"
)

// Verifier decides whether an account currently holds a valid access
// credential. Implementations must fail closed: on any error the returned
// bool is false and callers treat the account as unauthorized.
type Verifier interface {
	IsAuthorized(ctx context.Context, address string) (bool, error)
}

// New selects a policy from configuration. Unknown policy names fall back
// to the balance threshold policy.
func New(gw ledger.Gateway) Verifier {
	policy := config.GetString("verifier.policy")
	switch policy {
	case "asset":
		return NewAssetHoldingPolicy(gw, config.GetUint64("marketplace.assetId"))
	case "balance", "":
		return NewBalanceThresholdPolicy(gw, config.GetUint64("verifier.thresholdMicro"))
	default:
		logger.Warn("Unknown verifier policy, falling back to balance threshold",
			zap.String("policy", policy))
		return NewBalanceThresholdPolicy(gw, config.GetUint64("verifier.thresholdMicro"))
	}
}

// BalanceThresholdPolicy treats any account whose balance meets a fixed
// threshold as holding a credential. This is the demo stand-in for real
// asset ownership.
type BalanceThresholdPolicy struct {
	gw             ledger.Gateway
	thresholdMicro uint64
}

func NewBalanceThresholdPolicy(gw ledger.Gateway, thresholdMicro uint64) *BalanceThresholdPolicy {
	return &BalanceThresholdPolicy{gw: gw, thresholdMicro: thresholdMicro}
}

func (p *BalanceThresholdPolicy) IsAuthorized(ctx context.Context, address string) (bool, error) {
	balance, err := p.gw.GetBalance(ctx, address)
	if err != nil {
		logger.Error("Balance lookup failed during verification",
			zap.String("address", shortAddress(address)),
			zap.Error(err))
		return false, fmt.Errorf("%w: %v", apperrors.ErrVerificationFailed, err)
	}

	authorized := balance >= p.thresholdMicro
	logger.Info("Verified balance threshold",
		zap.String("address", shortAddress(address)),
		zap.Uint64("balanceMicro", balance),
		zap.Bool("authorized", authorized))
	return authorized, nil
}

// AssetHoldingPolicy is the production-like policy: the account must hold a
// positive balance of the credential asset within the validity window.
type AssetHoldingPolicy struct {
	gw      ledger.Gateway
	assetID uint64

	// maxAge bounds credential freshness; zero disables the age check,
	// matching the fixed-window simplification of the demo.
	maxAge time.Duration
}

func NewAssetHoldingPolicy(gw ledger.Gateway, assetID uint64) *AssetHoldingPolicy {
	return &AssetHoldingPolicy{gw: gw, assetID: assetID}
}

func (p *AssetHoldingPolicy) IsAuthorized(ctx context.Context, address string) (bool, error) {
	holdings, err := p.gw.GetHoldings(ctx, address, p.assetID)
	if err != nil {
		logger.Error("Holdings lookup failed during verification",
			zap.String("address", shortAddress(address)),
			zap.Error(err))
		return false, fmt.Errorf("%w: %v", apperrors.ErrVerificationFailed, err)
	}

	authorized := len(holdings) > 0
	logger.Info("Verified asset holdings",
		zap.String("address", shortAddress(address)),
		zap.Uint64("assetId", p.assetID),
		zap.Int("holdings", len(holdings)),
		zap.Bool("authorized", authorized))
	return authorized, nil
}

func shortAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:8] + "..."
}
