// controller/weather_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
	"github.com/jackoske/AllGoGrand/service"
	"github.com/jackoske/AllGoGrand/util"
)

type WeatherController struct {
	brokerService service.IBrokerService
}

func NewWeatherController(brokerService service.IBrokerService) *WeatherController {
	return &WeatherController{
		brokerService: brokerService,
	}
}

// RegisterRoutes registers the API routes
func (wc *WeatherController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/weather", wc.GetWeather)
}

// GetWeather endpoint: weather for a city, gated by token ownership.
func (wc *WeatherController) GetWeather(c *gin.Context) {
	city := c.Query("city")
	wallet := c.Query("wallet")
	if city == "" || wallet == "" {
		util.RespondWithError(c, http.StatusBadRequest, "city and wallet query parameters are required", apperrors.ErrInvalidCity)
		return
	}

	request := model.AccessRequest{
		ResourceKey:   city,
		CallerAccount: wallet,
	}

	decision, err := wc.brokerService.Handle(c, request)
	if err != nil {
		util.RespondWithDenial(c, http.StatusInternalServerError, model.ErrorDetail{
			Code:    string(model.ReasonInternalError),
			Message: "Internal server error",
		})
		return
	}

	if decision.Granted {
		c.JSON(http.StatusOK, model.WeatherResponse{
			Success:   true,
			Data:      *decision.Data,
			TokenInfo: *decision.TokenInfo,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	switch decision.Reason {
	case model.ReasonInvalidIdentity:
		util.RespondWithDenial(c, http.StatusBadRequest, model.ErrorDetail{
			Code:    string(model.ReasonInvalidIdentity),
			Message: decision.Message,
		})
	case model.ReasonUnauthorized:
		util.RespondWithDenial(c, http.StatusForbidden, model.ErrorDetail{
			Code:    string(model.ReasonUnauthorized),
			Message: decision.Message,
			Details: map[string]interface{}{
				"wallet_address": wallet,
				"hint":           decision.Hint,
			},
		})
	case model.ReasonUpstreamUnavailable:
		util.RespondWithDenial(c, http.StatusBadGateway, model.ErrorDetail{
			Code:    string(model.ReasonUpstreamUnavailable),
			Message: decision.Message,
		})
	default:
		util.RespondWithDenial(c, http.StatusInternalServerError, model.ErrorDetail{
			Code:    string(model.ReasonInternalError),
			Message: "Internal server error",
		})
	}
}
