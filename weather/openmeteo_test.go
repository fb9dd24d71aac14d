package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/logging"
)

func TestMain(m *testing.M) {
	logging.InitLogger("")
	os.Exit(m.Run())
}

func newFakeOpenMeteo(geocodeBody, forecastBody string, status int) (*OpenMeteo, func()) {
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(geocodeBody))
	}))
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(forecastBody))
	}))
	provider := &OpenMeteo{
		geocodeURL:  geocode.URL,
		forecastURL: forecast.URL,
		http:        newHTTPClient(),
	}
	return provider, func() {
		geocode.Close()
		forecast.Close()
	}
}

func TestOpenMeteoCurrent(t *testing.T) {
	geocodeBody := `{"results":[{"name":"Berlin","latitude":52.52,"longitude":13.41,"country_code":"DE"}]}`
	forecastBody := `{"current":{"temperature_2m":18.3,"relative_humidity_2m":65,"weather_code":3,"wind_speed_10m":4.7,"wind_direction_10m":220,"surface_pressure":1008.2}}`
	provider, cleanup := newFakeOpenMeteo(geocodeBody, forecastBody, http.StatusOK)
	defer cleanup()

	data, err := provider.Current(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Berlin", data.City)
	assert.Equal(t, "DE", data.Country)
	assert.Equal(t, 18.3, data.Temperature)
	assert.Equal(t, 65, data.Humidity)
	assert.Equal(t, 1008.2, data.Pressure)
	assert.Equal(t, "overcast", data.Description)
	assert.Equal(t, 220, data.WindDirection)
	assert.Equal(t, defaultVisibilityMeters, data.Visibility)
}

func TestOpenMeteoMissingPressureFallsBack(t *testing.T) {
	geocodeBody := `{"results":[{"name":"Berlin","latitude":52.52,"longitude":13.41,"country_code":"DE"}]}`
	forecastBody := `{"current":{"temperature_2m":18.3,"relative_humidity_2m":65,"weather_code":0,"wind_speed_10m":4.7,"wind_direction_10m":220}}`
	provider, cleanup := newFakeOpenMeteo(geocodeBody, forecastBody, http.StatusOK)
	defer cleanup()

	data, err := provider.Current(context.Background(), "Berlin")
	require.NoError(t, err)
	assert.Equal(t, float64(1013), data.Pressure)
	assert.Equal(t, "clear sky", data.Description)
}

func TestOpenMeteoUnknownCity(t *testing.T) {
	provider, cleanup := newFakeOpenMeteo(`{"results":[]}`, `{}`, http.StatusOK)
	defer cleanup()

	_, err := provider.Current(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
}

func TestOpenMeteoUpstreamError(t *testing.T) {
	provider, cleanup := newFakeOpenMeteo(`{}`, `{}`, http.StatusInternalServerError)
	defer cleanup()

	_, err := provider.Current(context.Background(), "Berlin")
	assert.ErrorIs(t, err, apperrors.ErrWeatherUnavailable)
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "clear sky", DescribeWeatherCode(0))
	assert.Equal(t, "thunderstorm", DescribeWeatherCode(95))
	assert.Equal(t, "unknown", DescribeWeatherCode(42))
}
