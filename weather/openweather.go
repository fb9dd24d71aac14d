// weather/openweather.go
package weather

import (
	"context"
	"net/http"
	"net/url"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
)

const openWeatherCurrentURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeather queries the OpenWeather current-conditions endpoint. Requires
// an API key; Current fails with ErrProviderNotConfigured without one.
type OpenWeather struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewOpenWeather(apiKey string) *OpenWeather {
	return &OpenWeather{
		baseURL: openWeatherCurrentURL,
		apiKey:  apiKey,
		http:    newHTTPClient(),
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
}

func (p *OpenWeather) Current(ctx context.Context, city string) (*model.WeatherData, error) {
	if p.apiKey == "" {
		return nil, apperrors.ErrProviderNotConfigured
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	var raw openWeatherResponse
	if err := getJSON(ctx, p.http, p.baseURL+"?"+query.Encode(), &raw); err != nil {
		return nil, err
	}

	description := ""
	if len(raw.Weather) > 0 {
		description = raw.Weather[0].Description
	}
	name := raw.Name
	if name == "" {
		name = city
	}

	return &model.WeatherData{
		City:          name,
		Country:       raw.Sys.Country,
		Temperature:   raw.Main.Temp,
		FeelsLike:     raw.Main.FeelsLike,
		Humidity:      raw.Main.Humidity,
		Pressure:      raw.Main.Pressure,
		Description:   description,
		WindSpeed:     raw.Wind.Speed,
		WindDirection: raw.Wind.Deg,
		Visibility:    raw.Visibility,
	}, nil
}
