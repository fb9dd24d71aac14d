package errors

import "errors"

var (
	ErrInvalidWallet   = errors.New("invalid wallet address")
	ErrInvalidCity     = errors.New("invalid city")
	ErrInternalServer  = errors.New("internal server error")
	ErrNotImplemented  = errors.New("not implemented")
	ErrRateLimitFailed = errors.New("rate limiting failed")
)

// Ledger gateway errors.
var (
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrNotConfirmed      = errors.New("transaction not confirmed within round limit")
	ErrRejectedByLedger  = errors.New("transaction rejected by ledger")
)

// Verification and acquisition errors.
var (
	ErrVerificationFailed = errors.New("credential verification failed")
	ErrInsufficientFunds  = errors.New("insufficient funds for token purchase")
	ErrRetriesExhausted   = errors.New("retries exhausted")
)

// Upstream weather provider errors.
var (
	ErrCityNotFound          = errors.New("city not found")
	ErrWeatherUnavailable    = errors.New("weather service unavailable")
	ErrProviderNotConfigured = errors.New("weather provider not configured")
)
