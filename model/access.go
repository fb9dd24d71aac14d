// model/access.go
package model

// DenialReason is a machine-readable reason code exposed at the API boundary.
type DenialReason string

const (
	ReasonInvalidIdentity     DenialReason = "INVALID_IDENTITY"
	ReasonUnauthorized        DenialReason = "UNAUTHORIZED"
	ReasonUpstreamUnavailable DenialReason = "UPSTREAM_UNAVAILABLE"
	ReasonInternalError       DenialReason = "INTERNAL_ERROR"
)

// AccessRequest is one attempt by a wallet to read a metered resource.
// Immutable; one per call.
type AccessRequest struct {
	ResourceKey   string `json:"resource_key"`
	CallerAccount string `json:"caller_account"`
}

// AcquisitionHint tells a denied caller how to obtain a valid credential
// without a human in the loop.
type AcquisitionHint struct {
	RequiredTokenType string `json:"required_token_type"`
	PriceMicroAlgos   uint64 `json:"price_microalgos"`
	MarketplaceAppID  string `json:"marketplace_app_id"`
	PurchaseEndpoint  string `json:"purchase_endpoint"`
}

// AccessDecision is the broker's answer to an AccessRequest. Exactly one of
// the granted payload or the denial fields is populated. Decisions are
// produced fresh per request and never persisted.
type AccessDecision struct {
	Granted   bool             `json:"granted"`
	Data      *WeatherData     `json:"data,omitempty"`
	TokenInfo *TokenInfo       `json:"token_info,omitempty"`
	Reason    DenialReason     `json:"reason,omitempty"`
	Message   string           `json:"message,omitempty"`
	Hint      *AcquisitionHint `json:"hint,omitempty"`
}

// Denied reports whether the decision denies access for the given reason.
func (d *AccessDecision) Denied(reason DenialReason) bool {
	return d != nil && !d.Granted && d.Reason == reason
}

// ErrorDetail is the wire shape of a structured denial.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorEnvelope wraps an ErrorDetail for JSON responses.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}
