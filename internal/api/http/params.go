package http

import (
	"net/http"
	"strconv"

	"agrimarket-backend/internal/service"
	"agrimarket-backend/internal/validation"

	"github.com/gorilla/mux"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, validation.FieldErrors{name: "must be a positive integer"}
	}
	return int32(id), nil
}

func pageParams(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(defaultPageSize)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		pageSize = int32(v)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}
	return page, pageSize
}

// viewerFromQuery reads the optional lat/lng pair. A half-provided or
// malformed pair reads as "no position".
func viewerFromQuery(r *http.Request) service.Viewer {
	latRaw := r.URL.Query().Get("lat")
	lngRaw := r.URL.Query().Get("lng")
	if latRaw == "" || lngRaw == "" {
		return service.Viewer{}
	}
	lat, errLat := strconv.ParseFloat(latRaw, 64)
	lng, errLng := strconv.ParseFloat(lngRaw, 64)
	if errLat != nil || errLng != nil {
		return service.Viewer{}
	}
	v := service.Viewer{Latitude: &lat, Longitude: &lng}
	if radius, err := strconv.ParseFloat(r.URL.Query().Get("rayon_km"), 64); err == nil && radius > 0 {
		v.RadiusKM = &radius
	}
	return v
}
