package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/ledger"
	"github.com/jackoske/AllGoGrand/model"
	"github.com/jackoske/AllGoGrand/util"
)

// ITokenService lists the access credentials a wallet currently holds.
type ITokenService interface {
	ListTokens(ctx context.Context, wallet string) (*model.TokensResponse, error)
}

// TokenService derives credential listings from live ledger state. Nothing
// is cached: the listing is recomputed per call.
type TokenService struct {
	gateway        ledger.Gateway
	validationUtil *util.ValidationUtil
	assetID        uint64
	assetName      string
	assetSymbol    string
	tokenDuration  time.Duration
}

func NewTokenService(gateway ledger.Gateway, validationUtil *util.ValidationUtil, assetID uint64, tokenDuration time.Duration) *TokenService {
	return &TokenService{
		gateway:        gateway,
		validationUtil: validationUtil,
		assetID:        assetID,
		assetName:      "OpenWeather Access Token",
		assetSymbol:    "OWAT",
		tokenDuration:  tokenDuration,
	}
}

func (s *TokenService) ListTokens(ctx context.Context, wallet string) (*model.TokensResponse, error) {
	if err := s.validationUtil.ValidateWalletAddress(wallet); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidWallet, err)
	}

	holdings, err := s.gateway.GetHoldings(ctx, wallet, s.assetID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.tokenDuration).Truncate(time.Second).Format(time.RFC3339)
	remaining := int64(s.tokenDuration / time.Second)

	tokens := make([]model.TokenDetails, 0, len(holdings))
	for _, holding := range holdings {
		tokens = append(tokens, model.TokenDetails{
			AssetID:              strconv.FormatUint(holding.AssetID, 10),
			AssetName:            s.assetName,
			Symbol:               s.assetSymbol,
			Balance:              holding.Amount,
			ExpiresAt:            &expiresAt,
			RemainingTimeSeconds: &remaining,
			Status:               "valid",
			TotalUses:            0,
			MaxUses:              1,
		})
	}

	return &model.TokensResponse{
		Success:       true,
		WalletAddress: wallet,
		Tokens:        tokens,
		Summary: map[string]int{
			"total_tokens":   len(tokens),
			"valid_tokens":   len(tokens),
			"expired_tokens": 0,
		},
	}, nil
}
