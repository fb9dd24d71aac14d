package service

// Services aggregates the broker-side services for wiring.
type Services struct {
	Broker IBrokerService
	Token  ITokenService
}
