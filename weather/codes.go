// weather/codes.go
package weather

// wmoCodes maps WMO weather interpretation codes to readable conditions.
var wmoCodes = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "moderate drizzle",
	55: "dense drizzle",
	61: "slight rain",
	63: "moderate rain",
	65: "heavy rain",
	71: "slight snow",
	73: "moderate snow",
	75: "heavy snow",
	95: "thunderstorm",
}

// DescribeWeatherCode converts a WMO weather code to a textual condition.
func DescribeWeatherCode(code int) string {
	if description, ok := wmoCodes[code]; ok {
		return description
	}
	return "unknown"
}
