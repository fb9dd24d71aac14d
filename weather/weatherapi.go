// weather/weatherapi.go
package weather

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
)

const weatherAPICurrentURL = "https://api.weatherapi.com/v1/current.json"

// WeatherAPI queries WeatherAPI.com. Speeds come back in kph and distances
// in km; both are normalized to SI units.
type WeatherAPI struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewWeatherAPI(apiKey string) *WeatherAPI {
	return &WeatherAPI{
		baseURL: weatherAPICurrentURL,
		apiKey:  apiKey,
		http:    newHTTPClient(),
	}
}

type weatherAPIResponse struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Humidity   int     `json:"humidity"`
		PressureMB float64 `json:"pressure_mb"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
		WindKPH    float64 `json:"wind_kph"`
		WindDegree int     `json:"wind_degree"`
		VisKM      float64 `json:"vis_km"`
	} `json:"current"`
}

func (p *WeatherAPI) Current(ctx context.Context, city string) (*model.WeatherData, error) {
	if p.apiKey == "" {
		return nil, apperrors.ErrProviderNotConfigured
	}

	query := url.Values{}
	query.Set("key", p.apiKey)
	query.Set("q", city)
	query.Set("aqi", "no")

	var raw weatherAPIResponse
	if err := getJSON(ctx, p.http, p.baseURL+"?"+query.Encode(), &raw); err != nil {
		return nil, err
	}

	current := raw.Current
	return &model.WeatherData{
		City:          raw.Location.Name,
		Country:       raw.Location.Country,
		Temperature:   current.TempC,
		FeelsLike:     current.FeelsLikeC,
		Humidity:      current.Humidity,
		Pressure:      current.PressureMB,
		Description:   strings.ToLower(current.Condition.Text),
		WindSpeed:     current.WindKPH / 3.6,
		WindDirection: current.WindDegree,
		Visibility:    int(current.VisKM * 1000),
	}, nil
}
