package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackoske/AllGoGrand/controller"
	"github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/model"
	"github.com/jackoske/AllGoGrand/test/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.InitLogger("")
	os.Exit(m.Run())
}

func weatherRouter(broker *mock.MockBrokerService) *gin.Engine {
	router := gin.New()
	controller.NewWeatherController(broker).RegisterRoutes(router.Group("/"))
	return router
}

func getWeather(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestGetWeatherMissingParams(t *testing.T) {
	broker := new(mock.MockBrokerService)
	router := weatherRouter(broker)

	for _, url := range []string{"/weather", "/weather?city=London", "/weather?wallet=WALLET"} {
		w := getWeather(t, router, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
	broker.AssertNotCalled(t, "Handle", tmock.Anything, tmock.Anything)
}

func TestGetWeatherGranted(t *testing.T) {
	broker := new(mock.MockBrokerService)
	broker.On("Handle", tmock.Anything, model.AccessRequest{ResourceKey: "London", CallerAccount: "WALLET"}).
		Return(&model.AccessDecision{
			Granted: true,
			Data:    &model.WeatherData{City: "London", Temperature: 18.5, Description: "overcast"},
			TokenInfo: &model.TokenInfo{
				TokenID:              "weather_access_token",
				RemainingTimeSeconds: 3600,
				ExpiresAt:            time.Now().UTC().Format(time.RFC3339),
			},
		}, nil)

	w := getWeather(t, weatherRouter(broker), "/weather?city=London&wallet=WALLET")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "London", resp.Data.City)
	assert.Equal(t, int64(3600), resp.TokenInfo.RemainingTimeSeconds)
}

func TestGetWeatherInvalidIdentity(t *testing.T) {
	broker := new(mock.MockBrokerService)
	broker.On("Handle", tmock.Anything, tmock.Anything).
		Return(&model.AccessDecision{
			Granted: false,
			Reason:  model.ReasonInvalidIdentity,
			Message: "Invalid wallet address format",
		}, nil)

	w := getWeather(t, weatherRouter(broker), "/weather?city=London&wallet=bogus")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "INVALID_IDENTITY", envelope.Error.Code)
}

func TestGetWeatherUnauthorizedCarriesHint(t *testing.T) {
	broker := new(mock.MockBrokerService)
	broker.On("Handle", tmock.Anything, tmock.Anything).
		Return(&model.AccessDecision{
			Granted: false,
			Reason:  model.ReasonUnauthorized,
			Message: "No valid weather access token found for this wallet",
			Hint: &model.AcquisitionHint{
				RequiredTokenType: "WeatherAccessToken",
				PriceMicroAlgos:   1_000_000,
				PurchaseEndpoint:  "/marketplace/buy",
			},
		}, nil)

	w := getWeather(t, weatherRouter(broker), "/weather?city=London&wallet=WALLET")
	require.Equal(t, http.StatusForbidden, w.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	assert.Equal(t, "WALLET", envelope.Error.Details["wallet_address"])

	hint, ok := envelope.Error.Details["hint"].(map[string]interface{})
	require.True(t, ok, "denial must carry an acquisition hint")
	assert.Equal(t, "WeatherAccessToken", hint["required_token_type"])
	assert.Equal(t, "/marketplace/buy", hint["purchase_endpoint"])
	assert.Equal(t, float64(1_000_000), hint["price_microalgos"])
}

func TestGetWeatherUpstreamUnavailable(t *testing.T) {
	broker := new(mock.MockBrokerService)
	broker.On("Handle", tmock.Anything, tmock.Anything).
		Return(&model.AccessDecision{
			Granted: false,
			Reason:  model.ReasonUpstreamUnavailable,
			Message: "Weather service unavailable",
		}, nil)

	w := getWeather(t, weatherRouter(broker), "/weather?city=London&wallet=WALLET")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetWeatherInternalError(t *testing.T) {
	broker := new(mock.MockBrokerService)
	broker.On("Handle", tmock.Anything, tmock.Anything).
		Return(nil, errors.New("boom"))

	w := getWeather(t, weatherRouter(broker), "/weather?city=London&wallet=WALLET")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
}
