package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jackoske/AllGoGrand/errors"
)

func TestWeatherAPIRequiresKey(t *testing.T) {
	provider := NewWeatherAPI("")
	_, err := provider.Current(context.Background(), "London")
	assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
}

func TestWeatherAPINormalizesUnits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"location":{"name":"London","country":"United Kingdom"},
			"current":{
				"temp_c":18.5,"feelslike_c":17.9,"humidity":70,"pressure_mb":1012,
				"condition":{"text":"Overcast"},
				"wind_kph":18.0,"wind_degree":240,"vis_km":10
			}
		}`))
	}))
	defer server.Close()

	provider := NewWeatherAPI("test-key")
	provider.baseURL = server.URL

	data, err := provider.Current(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", data.City)
	// kph to m/s, km to meters, condition lowercased.
	assert.InDelta(t, 5.0, data.WindSpeed, 0.001)
	assert.Equal(t, 10000, data.Visibility)
	assert.Equal(t, "overcast", data.Description)
}

func TestOpenWeatherRequiresKey(t *testing.T) {
	provider := NewOpenWeather("")
	_, err := provider.Current(context.Background(), "London")
	assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
}

func TestOpenWeatherCityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider := NewOpenWeather("test-key")
	provider.baseURL = server.URL

	_, err := provider.Current(context.Background(), "Nowhereville")
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
}
