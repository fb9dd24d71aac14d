package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jackoske/AllGoGrand/audit"
	apperrors "github.com/jackoske/AllGoGrand/errors"
	logger "github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/model"
	"github.com/jackoske/AllGoGrand/util"
	"github.com/jackoske/AllGoGrand/verify"
	"github.com/jackoske/AllGoGrand/weather"
)

// IBrokerService decides access requests against the metered weather
// resource.
type IBrokerService interface {
	Handle(ctx context.Context, request model.AccessRequest) (*model.AccessDecision, error)
}

// WeatherCache is the read-through cache for upstream payloads. Credential
// status is never cached; only provider responses are.
type WeatherCache interface {
	GetWeather(ctx context.Context, city string) (*model.WeatherData, error)
	SetWeather(ctx context.Context, city string, data *model.WeatherData) error
}

// HintConfig describes the acquisition hint attached to unauthorized
// denials.
type HintConfig struct {
	RequiredTokenType string
	PriceMicroAlgos   uint64
	MarketplaceAppID  string
	PurchaseEndpoint  string
	TokenID           string
	TokenDuration     time.Duration
}

// BrokerService handles admission decisions. It is stateless across
// requests: every decision is re-derived from live ledger and upstream
// state, so concurrent use is safe.
type BrokerService struct {
	verifier       verify.Verifier
	provider       weather.Provider
	validationUtil *util.ValidationUtil
	cache          WeatherCache
	eventBus       *util.EventBus
	hint           HintConfig
}

// NewBrokerService creates a new instance of BrokerService. auditSvc may be
// nil; when present every decision is logged through the event bus.
func NewBrokerService(
	verifier verify.Verifier,
	provider weather.Provider,
	validationUtil *util.ValidationUtil,
	cache WeatherCache,
	eventBus *util.EventBus,
	auditSvc audit.Service,
	hint HintConfig,
) *BrokerService {
	service := &BrokerService{
		verifier:       verifier,
		provider:       provider,
		validationUtil: validationUtil,
		cache:          cache,
		eventBus:       eventBus,
		hint:           hint,
	}

	if eventBus != nil && auditSvc != nil {
		handler := func(ctx context.Context, event util.Event) error {
			log, ok := event.Payload.(audit.AccessLog)
			if !ok {
				return errors.New("unexpected access event payload")
			}
			return auditSvc.LogAccess(ctx, log)
		}
		eventBus.Subscribe(util.EventAccessGranted, handler)
		eventBus.Subscribe(util.EventAccessDenied, handler)
	}

	return service
}

// Handle evaluates one access request. Denials are decisions, not errors;
// the error return is reserved for broker-internal failures.
func (s *BrokerService) Handle(ctx context.Context, request model.AccessRequest) (*model.AccessDecision, error) {
	if err := s.validationUtil.ValidateWalletAddress(request.CallerAccount); err != nil {
		// Malformed identity short-circuits before any ledger or
		// upstream call.
		decision := &model.AccessDecision{
			Granted: false,
			Reason:  model.ReasonInvalidIdentity,
			Message: "Invalid wallet address format",
		}
		s.publishDecision(ctx, request, decision)
		return decision, nil
	}

	authorized, err := s.verifier.IsAuthorized(ctx, request.CallerAccount)
	if err != nil {
		// Fail closed: a verification failure is indistinguishable from
		// "no credential" at the boundary.
		logger.Warn("Verification failed, denying access",
			zap.String("wallet", request.CallerAccount[:8]+"..."),
			zap.Error(err))
		authorized = false
	}
	if !authorized {
		decision := &model.AccessDecision{
			Granted: false,
			Reason:  model.ReasonUnauthorized,
			Message: "No valid weather access token found for this wallet",
			Hint: &model.AcquisitionHint{
				RequiredTokenType: s.hint.RequiredTokenType,
				PriceMicroAlgos:   s.hint.PriceMicroAlgos,
				MarketplaceAppID:  s.hint.MarketplaceAppID,
				PurchaseEndpoint:  s.hint.PurchaseEndpoint,
			},
		}
		s.publishDecision(ctx, request, decision)
		return decision, nil
	}

	data, err := s.fetchWeather(ctx, request.ResourceKey)
	if err != nil {
		logger.Error("Upstream weather fetch failed",
			zap.String("city", request.ResourceKey),
			zap.Error(err))
		decision := &model.AccessDecision{
			Granted: false,
			Reason:  model.ReasonUpstreamUnavailable,
			Message: "Weather service unavailable",
		}
		if errors.Is(err, apperrors.ErrCityNotFound) {
			decision.Message = "City not found"
		}
		s.publishDecision(ctx, request, decision)
		return decision, nil
	}

	decision := &model.AccessDecision{
		Granted:   true,
		Data:      data,
		TokenInfo: s.tokenInfo(),
	}
	s.publishDecision(ctx, request, decision)
	return decision, nil
}

func (s *BrokerService) fetchWeather(ctx context.Context, city string) (*model.WeatherData, error) {
	if s.cache != nil {
		cached, err := s.cache.GetWeather(ctx, city)
		if err != nil {
			logger.Warn("Weather cache read failed", zap.String("city", city), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	data, err := s.provider.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetWeather(ctx, city, data); err != nil {
			logger.Warn("Weather cache write failed", zap.String("city", city), zap.Error(err))
		}
	}
	return data, nil
}

// tokenInfo builds the informational validity window attached to granted
// responses. It is advisory only; the next request is re-verified from
// scratch.
func (s *BrokerService) tokenInfo() *model.TokenInfo {
	expiresAt := time.Now().UTC().Add(s.hint.TokenDuration).Truncate(time.Second)
	return &model.TokenInfo{
		TokenID:              s.hint.TokenID,
		RemainingTimeSeconds: int64(s.hint.TokenDuration / time.Second),
		ExpiresAt:            expiresAt.Format(time.RFC3339),
	}
}

func (s *BrokerService) publishDecision(ctx context.Context, request model.AccessRequest, decision *model.AccessDecision) {
	if s.eventBus == nil {
		return
	}
	eventType := util.EventAccessDenied
	if decision.Granted {
		eventType = util.EventAccessGranted
	}
	s.eventBus.Publish(ctx, eventType, audit.AccessLog{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		WalletAddress: request.CallerAccount,
		City:          request.ResourceKey,
		AccessGranted: decision.Granted,
		Reason:        string(decision.Reason),
	})
}
