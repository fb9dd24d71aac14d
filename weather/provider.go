// weather/provider.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jackoske/AllGoGrand/config"
	apperrors "github.com/jackoske/AllGoGrand/errors"
	logger "github.com/jackoske/AllGoGrand/logging"
	"github.com/jackoske/AllGoGrand/model"
)

// Provider fetches current conditions for a city and normalizes them into
// the shared payload shape. Implementations hold no mutable state.
type Provider interface {
	Current(ctx context.Context, city string) (*model.WeatherData, error)
}

// New selects a provider from the weather.provider config key, falling back
// to Open-Meteo (the keyless provider) on unknown values.
func New() Provider {
	provider := config.GetString("weather.provider")
	switch provider {
	case "open-meteo", "":
		return NewOpenMeteo()
	case "openweather":
		return NewOpenWeather(config.GetString("weather.openWeatherKey"))
	case "weatherapi":
		return NewWeatherAPI(config.GetString("weather.weatherAPIKey"))
	default:
		logger.Warn("Unknown weather provider, falling back to Open-Meteo",
			zap.String("provider", provider))
		return NewOpenMeteo()
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func getJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrWeatherUnavailable, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrCityNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: provider returned %d", apperrors.ErrWeatherUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed provider response: %v", apperrors.ErrWeatherUnavailable, err)
	}
	return nil
}
