// controller/token_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
	"github.com/jackoske/AllGoGrand/service"
	"github.com/jackoske/AllGoGrand/util"
)

type TokenController struct {
	tokenService service.ITokenService
}

func NewTokenController(tokenService service.ITokenService) *TokenController {
	return &TokenController{
		tokenService: tokenService,
	}
}

// RegisterRoutes registers the API routes
func (tc *TokenController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/tokens/:wallet", tc.GetWalletTokens)
}

// GetWalletTokens endpoint: credentials currently held by a wallet.
func (tc *TokenController) GetWalletTokens(c *gin.Context) {
	wallet := c.Param("wallet")

	tokens, err := tc.tokenService.ListTokens(c, wallet)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidWallet):
			util.RespondWithDenial(c, http.StatusBadRequest, model.ErrorDetail{
				Code:    string(model.ReasonInvalidIdentity),
				Message: "Invalid wallet address format",
			})
		case errors.Is(err, apperrors.ErrLedgerUnavailable):
			util.RespondWithDenial(c, http.StatusInternalServerError, model.ErrorDetail{
				Code:    string(model.ReasonInternalError),
				Message: "Error retrieving token information",
			})
		default:
			util.RespondWithDenial(c, http.StatusInternalServerError, model.ErrorDetail{
				Code:    string(model.ReasonInternalError),
				Message: "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, tokens)
}
