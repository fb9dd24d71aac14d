// weather/openmeteo.go
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	apperrors "github.com/jackoske/AllGoGrand/errors"
	"github.com/jackoske/AllGoGrand/model"
)

const (
	openMeteoGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	openMeteoForecastURL = "https://api.open-meteo.com/v1/forecast"

	// Open-Meteo does not report visibility; callers get a fixed default.
	defaultVisibilityMeters = 10000
)

// OpenMeteo is the keyless default provider. A city lookup is two calls:
// a geocode to resolve coordinates, then a current-conditions forecast.
type OpenMeteo struct {
	geocodeURL  string
	forecastURL string
	http        *http.Client
}

func NewOpenMeteo() *OpenMeteo {
	return &OpenMeteo{
		geocodeURL:  openMeteoGeocodeURL,
		forecastURL: openMeteoForecastURL,
		http:        newHTTPClient(),
	}
}

type geocodeResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature     float64 `json:"temperature_2m"`
		Humidity        int     `json:"relative_humidity_2m"`
		WeatherCode     int     `json:"weather_code"`
		WindSpeed       float64 `json:"wind_speed_10m"`
		WindDirection   int     `json:"wind_direction_10m"`
		SurfacePressure float64 `json:"surface_pressure"`
	} `json:"current"`
}

func (p *OpenMeteo) Current(ctx context.Context, city string) (*model.WeatherData, error) {
	location, err := p.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", location.Latitude))
	query.Set("longitude", fmt.Sprintf("%f", location.Longitude))
	query.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,wind_direction_10m,surface_pressure")
	query.Set("timezone", "auto")

	var forecast forecastResponse
	if err := getJSON(ctx, p.http, p.forecastURL+"?"+query.Encode(), &forecast); err != nil {
		return nil, err
	}

	current := forecast.Current
	pressure := current.SurfacePressure
	if pressure == 0 {
		pressure = 1013
	}

	return &model.WeatherData{
		City:          location.Name,
		Country:       location.CountryCode,
		Temperature:   current.Temperature,
		FeelsLike:     current.Temperature,
		Humidity:      current.Humidity,
		Pressure:      pressure,
		Description:   DescribeWeatherCode(current.WeatherCode),
		WindSpeed:     current.WindSpeed,
		WindDirection: current.WindDirection,
		Visibility:    defaultVisibilityMeters,
	}, nil
}

func (p *OpenMeteo) geocode(ctx context.Context, city string) (*geocodeResult, error) {
	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")

	var geocoded geocodeResponse
	if err := getJSON(ctx, p.http, p.geocodeURL+"?"+query.Encode(), &geocoded); err != nil {
		return nil, err
	}
	if len(geocoded.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrCityNotFound, city)
	}
	return &geocoded.Results[0], nil
}
