// model/weather.go
package model

// WeatherData is the normalized weather payload returned to callers,
// independent of which upstream provider produced it.
type WeatherData struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Humidity      int     `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	Description   string  `json:"description"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection int     `json:"wind_direction"`
	Visibility    int     `json:"visibility"`
	UVIndex       *int    `json:"uv_index,omitempty"`
}

// TokenInfo describes the informational validity window attached to a
// granted response. It is display-only; every request is re-verified.
type TokenInfo struct {
	TokenID              string `json:"token_id"`
	RemainingTimeSeconds int64  `json:"remaining_time_seconds"`
	ExpiresAt            string `json:"expires_at"`
}

type WeatherResponse struct {
	Success   bool        `json:"success"`
	Data      WeatherData `json:"data"`
	TokenInfo TokenInfo   `json:"token_info"`
	Timestamp string      `json:"timestamp"`
}

// TokenDetails describes one held access credential for the listing endpoint.
type TokenDetails struct {
	AssetID              string  `json:"asset_id"`
	AssetName            string  `json:"asset_name"`
	Symbol               string  `json:"symbol"`
	Balance              uint64  `json:"balance"`
	ExpiresAt            *string `json:"expires_at,omitempty"`
	RemainingTimeSeconds *int64  `json:"remaining_time_seconds,omitempty"`
	Status               string  `json:"status"`
	PurchaseTime         *string `json:"purchase_time,omitempty"`
	TotalUses            int     `json:"total_uses"`
	MaxUses              int     `json:"max_uses"`
}

type TokensResponse struct {
	Success       bool           `json:"success"`
	WalletAddress string         `json:"wallet_address"`
	Tokens        []TokenDetails `json:"tokens"`
	Summary       map[string]int `json:"summary"`
}
