// controller/controllers.go
package controller

import (
	"github.com/jackoske/AllGoGrand/ledger"
	"github.com/jackoske/AllGoGrand/service"
)

// Controllers aggregates the HTTP controllers for route registration.
type Controllers struct {
	Weather *WeatherController
	Token   *TokenController
	Health  *HealthController
}

func NewControllers(services *service.Services, gateway ledger.Gateway) *Controllers {
	return &Controllers{
		Weather: NewWeatherController(services.Broker),
		Token:   NewTokenController(services.Token),
		Health:  NewHealthController(gateway),
	}
}
