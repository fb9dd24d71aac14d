// controller/health_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jackoske/AllGoGrand/config"
	"github.com/jackoske/AllGoGrand/db"
	"github.com/jackoske/AllGoGrand/ledger"
	"github.com/jackoske/AllGoGrand/model"
)

const apiVersion = "1.0.0"

type HealthController struct {
	gateway ledger.Gateway
}

func NewHealthController(gateway ledger.Gateway) *HealthController {
	return &HealthController{gateway: gateway}
}

// RegisterRoutes registers the API routes
func (hc *HealthController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", hc.HealthCheck)
}

// HealthCheck endpoint: collaborator liveness, gathered concurrently.
func (hc *HealthController) HealthCheck(c *gin.Context) {
	var (
		ledgerStatus = "connected"
		lastRound    uint64
		redisStatus  = "connected"
	)

	g, ctx := errgroup.WithContext(c)
	g.Go(func() error {
		status, err := hc.gateway.Status(ctx)
		if err != nil {
			ledgerStatus = "disconnected"
			return nil
		}
		lastRound = status.LastRound
		return nil
	})
	g.Go(func() error {
		if err := db.Ping(ctx); err != nil {
			redisStatus = "disconnected"
		}
		return nil
	})
	_ = g.Wait()

	provider := config.GetString("weather.provider")
	providerStatus := "available"
	switch {
	case provider == "openweather" && config.GetString("weather.openWeatherKey") == "":
		providerStatus = "not_configured"
	case provider == "weatherapi" && config.GetString("weather.weatherAPIKey") == "":
		providerStatus = "not_configured"
	}

	overall := "healthy"
	if ledgerStatus != "connected" {
		overall = "degraded"
	}

	c.JSON(http.StatusOK, model.HealthResponse{
		Status:  overall,
		Version: apiVersion,
		Services: map[string]interface{}{
			"ledger_node": map[string]interface{}{
				"status":     ledgerStatus,
				"last_round": lastRound,
			},
			"weather_api": map[string]interface{}{
				"status":   providerStatus,
				"provider": provider,
			},
			"redis": map[string]interface{}{
				"status": redisStatus,
			},
		},
		ContractInfo: map[string]string{
			"marketplace_app_id":   config.GetString("marketplace.appId"),
			"weather_token_asa_id": config.GetString("marketplace.assetId"),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
