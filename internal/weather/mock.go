package weather

import (
	"context"
	"math"
	"time"

	"agrimarket-backend/internal/domain"
)

var conditions = []string{"ensoleille", "partiellement nuageux", "nuageux", "averses", "orage"}

// mockForecaster derives procedurally varied but stable numbers from
// the coordinate and the current day, so repeated calls for the same
// place and day agree with each other.
type mockForecaster struct{}

func NewMock() Forecaster {
	return &mockForecaster{}
}

func (m *mockForecaster) Forecast(ctx context.Context, latitude, longitude float64) (*domain.WeatherReport, error) {
	now := time.Now().UTC()
	base := seed(latitude, longitude, now)

	report := &domain.WeatherReport{
		Latitude:     latitude,
		Longitude:    longitude,
		TemperatureC: 26 + float64(base%9),
		Humidity:     40 + float64((base/7)%45),
		WindKmH:      5 + float64((base/11)%20),
		Condition:    conditions[base%uint64(len(conditions))],
	}

	for i := 0; i < 5; i++ {
		day := now.AddDate(0, 0, i+1)
		s := seed(latitude, longitude, day)
		min := 20 + float64(s%6)
		report.Forecast = append(report.Forecast, domain.WeatherDay{
			Date:       day.Format("2006-01-02"),
			MinC:       min,
			MaxC:       min + 6 + float64((s/5)%7),
			Condition:  conditions[s%uint64(len(conditions))],
			RainChance: int32((s / 3) % 80),
		})
	}

	if report.Condition == "orage" || report.Condition == "averses" {
		report.Advisory = "Pluies attendues: reporter les traitements phytosanitaires et proteger les recoltes sechees."
	}

	return report, nil
}

func seed(lat, lng float64, day time.Time) uint64 {
	y, m, d := day.Date()
	v := uint64(math.Abs(lat)*1000)*31 + uint64(math.Abs(lng)*1000)*17
	return v + uint64(y*10000+int(m)*100+d)
}
