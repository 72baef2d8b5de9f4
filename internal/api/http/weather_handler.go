package http

import (
	"net/http"
	"strconv"

	"agrimarket-backend/internal/service"
	"agrimarket-backend/internal/validation"
)

type WeatherHandler struct {
	weather service.WeatherService
}

func NewWeatherHandler(weather service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		respondError(w, validation.FieldErrors{"lat": "lat and lng query parameters are required"})
		return
	}

	report, err := h.weather.Current(r.Context(), lat, lng)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, report)
}
