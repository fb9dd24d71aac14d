// agent/backend.go
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
)

// BrokerClient issues access requests against the resource broker.
type BrokerClient interface {
	GetWeather(ctx context.Context, city, wallet string) (*model.AccessDecision, error)
}

// HTTPBrokerClient talks to the broker's HTTP surface.
type HTTPBrokerClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPBrokerClient(baseURL string) *HTTPBrokerClient {
	return &HTTPBrokerClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// deniedEnvelope mirrors the broker's structured error body.
type deniedEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			WalletAddress string                 `json:"wallet_address"`
			Hint          *model.AcquisitionHint `json:"hint"`
		} `json:"details"`
	} `json:"error"`
}

// ListTokens fetches the wallet's current credential listing.
func (c *HTTPBrokerClient) ListTokens(ctx context.Context, wallet string) (*model.TokensResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tokens/"+wallet, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokens request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokens request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("broker returned %d for token listing", resp.StatusCode)
	}

	var tokens model.TokensResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("malformed tokens response: %w", err)
	}
	return &tokens, nil
}

func (c *HTTPBrokerClient) GetWeather(ctx context.Context, city, wallet string) (*model.AccessDecision, error) {
	query := url.Values{}
	query.Set("city", city)
	query.Set("wallet", wallet)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var granted model.WeatherResponse
		if err := json.NewDecoder(resp.Body).Decode(&granted); err != nil {
			return nil, fmt.Errorf("malformed weather response: %w", err)
		}
		return &model.AccessDecision{
			Granted:   true,
			Data:      &granted.Data,
			TokenInfo: &granted.TokenInfo,
		}, nil
	}

	var denied deniedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&denied); err != nil {
		return nil, fmt.Errorf("%w: broker returned %d with malformed body",
			apperrors.ErrInternalServer, resp.StatusCode)
	}

	decision := &model.AccessDecision{
		Granted: false,
		Reason:  model.DenialReason(denied.Error.Code),
		Message: denied.Error.Message,
		Hint:    denied.Error.Details.Hint,
	}
	if decision.Reason == "" {
		decision.Reason = model.ReasonInternalError
	}
	return decision, nil
}
