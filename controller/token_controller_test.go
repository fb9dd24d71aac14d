package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackoske/AllGoGrand/controller"
	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
	"github.com/jackoske/AllGoGrand/test/mock"
)

func tokenRouter(tokens *mock.MockTokenService) *gin.Engine {
	router := gin.New()
	controller.NewTokenController(tokens).RegisterRoutes(router.Group("/"))
	return router
}

func getTokens(t *testing.T, router *gin.Engine, wallet string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/tokens/"+wallet, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestGetWalletTokens(t *testing.T) {
	tokens := new(mock.MockTokenService)
	tokens.On("ListTokens", tmock.Anything, "WALLET").
		Return(&model.TokensResponse{
			Success:       true,
			WalletAddress: "WALLET",
			Tokens: []model.TokenDetails{{
				AssetID:   "42",
				AssetName: "OpenWeather Access Token",
				Symbol:    "OWAT",
				Balance:   1,
				Status:    "valid",
				MaxUses:   1,
			}},
			Summary: map[string]int{"total_tokens": 1, "valid_tokens": 1, "expired_tokens": 0},
		}, nil)

	w := getTokens(t, tokenRouter(tokens), "WALLET")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TokensResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Tokens, 1)
	assert.Equal(t, "OWAT", resp.Tokens[0].Symbol)
	assert.Equal(t, 1, resp.Summary["valid_tokens"])
}

func TestGetWalletTokensInvalidWallet(t *testing.T) {
	tokens := new(mock.MockTokenService)
	tokens.On("ListTokens", tmock.Anything, "bogus").
		Return(nil, fmt.Errorf("%w: bad format", apperrors.ErrInvalidWallet))

	w := getTokens(t, tokenRouter(tokens), "bogus")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INVALID_IDENTITY", envelope.Error.Code)
}

func TestGetWalletTokensLedgerUnavailable(t *testing.T) {
	tokens := new(mock.MockTokenService)
	tokens.On("ListTokens", tmock.Anything, "WALLET").
		Return(nil, fmt.Errorf("%w: node returned 500", apperrors.ErrLedgerUnavailable))

	w := getTokens(t, tokenRouter(tokens), "WALLET")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Error retrieving token information", envelope.Error.Message)
}
