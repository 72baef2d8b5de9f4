package domain

import "time"

// DiagnosisResult is the structured output of a crop image analysis.
// The generation behind it is provider-specific; only the shape is
// contractual.
type DiagnosisResult struct {
	ID             string    `json:"id"`
	UserID         int32     `json:"user_id,omitempty"`
	ImageURI       string    `json:"image_uri"`
	Disease        string    `json:"disease"`
	Confidence     int32     `json:"confidence"` // percentage, 0..100
	Severity       string    `json:"severity"`
	Treatment      string    `json:"treatment"`
	Prevention     string    `json:"prevention"`
	Symptoms       []string  `json:"symptoms"`
	Causes         []string  `json:"causes"`
	PhotoQualityOK bool      `json:"photo_quality_ok"`
	CreatedOn      time.Time `json:"created_on"`
}

type WeatherDay struct {
	Date       string  `json:"date"`
	MinC       float64 `json:"min_c"`
	MaxC       float64 `json:"max_c"`
	Condition  string  `json:"condition"`
	RainChance int32   `json:"rain_chance"` // percentage
}

type WeatherReport struct {
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	TemperatureC float64      `json:"temperature_c"`
	Humidity     float64      `json:"humidity"`
	WindKmH      float64      `json:"wind_km_h"`
	Condition    string       `json:"condition"`
	Advisory     string       `json:"advisory,omitempty"`
	Forecast     []WeatherDay `json:"forecast"`
}
