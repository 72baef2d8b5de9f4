// Package weather defines the forecast provider. Like the diagnosis
// analyzer, the interface is the contract and the bundled generator is
// a stand-in for a real forecast API.
package weather

import (
	"context"

	"agrimarket-backend/internal/domain"
)

type Forecaster interface {
	Forecast(ctx context.Context, latitude, longitude float64) (*domain.WeatherReport, error)
}
