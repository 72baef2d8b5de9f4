package service

import (
	"context"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/validation"
	"agrimarket-backend/internal/weather"
)

type weatherService struct {
	forecaster weather.Forecaster
}

func NewWeatherService(forecaster weather.Forecaster) WeatherService {
	return &weatherService{forecaster: forecaster}
}

func (s *weatherService) Current(ctx context.Context, latitude, longitude float64) (*domain.WeatherReport, error) {
	errs := validation.FieldErrors{}
	if latitude < -90 || latitude > 90 {
		errs["latitude"] = "latitude must be between -90 and 90"
	}
	if longitude < -180 || longitude > 180 {
		errs["longitude"] = "longitude must be between -180 and 180"
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return s.forecaster.Forecast(ctx, latitude, longitude)
}
