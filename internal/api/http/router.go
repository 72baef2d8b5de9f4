package http

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"agrimarket-backend/internal/security"
	"agrimarket-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

// Services bundles everything the router needs.
type Services struct {
	Auth          service.AuthService
	Profiles      service.ProfileService
	Listings      service.ListingService
	Equipment     service.EquipmentService
	Reservations  service.ReservationService
	References    service.ReferenceService
	Diagnoses     service.DiagnosisService
	Weather       service.WeatherService
	Stats         service.StatsService
	Notifications service.NotificationService
}

// NewRouter builds the full /api/v1 route table. DB and Redis handles
// are only used by the health endpoint.
func NewRouter(svcs Services, tokens security.TokenManager, db *sql.DB, rdb *redis.Client) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", healthHandler(db, rdb)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	authH := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth/signup", authH.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authH.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authH.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authH.Logout).Methods(http.MethodPost)

	refH := NewReferenceHandler(svcs.References)
	api.HandleFunc("/categories/produits", refH.ProductCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/equipements", refH.EquipmentCategories).Methods(http.MethodGet)
	api.HandleFunc("/refs/etats", refH.States).Methods(http.MethodGet)
	api.HandleFunc("/refs/cultures", refH.Crops).Methods(http.MethodGet)

	listingH := NewListingHandler(svcs.Listings)
	api.HandleFunc("/annonces", listingH.Search).Methods(http.MethodGet)
	api.HandleFunc("/annonces/{id:[0-9]+}", listingH.Get).Methods(http.MethodGet)

	equipmentH := NewEquipmentHandler(svcs.Equipment)
	api.HandleFunc("/equipements", equipmentH.Search).Methods(http.MethodGet)
	api.HandleFunc("/equipements/{id:[0-9]+}", equipmentH.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipements/{id:[0-9]+}/evaluations", equipmentH.ListReviews).Methods(http.MethodGet)

	// Everything below requires a valid access token.
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(tokens))

	profileH := NewProfileHandler(svcs.Profiles, svcs.Stats)
	auth.HandleFunc("/me", profileH.GetMe).Methods(http.MethodGet)
	// PUT and POST both upsert; a profile row may not exist yet.
	auth.HandleFunc("/me/profile", profileH.UpdateProfile).Methods(http.MethodPut, http.MethodPost)
	auth.HandleFunc("/me/stats", profileH.MyStats).Methods(http.MethodGet)
	auth.HandleFunc("/me/annonces", listingH.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/me/equipements", equipmentH.ListMine).Methods(http.MethodGet)

	auth.HandleFunc("/annonces", listingH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/annonces/{id:[0-9]+}", listingH.Update).Methods(http.MethodPut)
	auth.HandleFunc("/annonces/{id:[0-9]+}", listingH.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/equipements", equipmentH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/equipements/{id:[0-9]+}", equipmentH.Update).Methods(http.MethodPut)
	auth.HandleFunc("/equipements/{id:[0-9]+}", equipmentH.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/equipements/{id:[0-9]+}/evaluations", equipmentH.AddReview).Methods(http.MethodPost)

	reservationH := NewReservationHandler(svcs.Reservations)
	auth.HandleFunc("/reservations", reservationH.Create).Methods(http.MethodPost)
	auth.HandleFunc("/reservations/quote", reservationH.Quote).Methods(http.MethodPost)
	auth.HandleFunc("/reservations/{id:[0-9]+}", reservationH.Get).Methods(http.MethodGet)
	auth.HandleFunc("/reservations/{id:[0-9]+}/statut", reservationH.UpdateStatus).Methods(http.MethodPut)
	auth.HandleFunc("/me/reservations", reservationH.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/me/locations", reservationH.ListReceived).Methods(http.MethodGet)

	diagnosisH := NewDiagnosisHandler(svcs.Diagnoses)
	auth.HandleFunc("/diagnostics", diagnosisH.Diagnose).Methods(http.MethodPost)
	auth.HandleFunc("/diagnostics/history", diagnosisH.History).Methods(http.MethodGet)
	auth.HandleFunc("/diagnostics/history", diagnosisH.ClearHistory).Methods(http.MethodDelete)
	auth.HandleFunc("/diagnostics/history/{id}", diagnosisH.RemoveFromHistory).Methods(http.MethodDelete)

	weatherH := NewWeatherHandler(svcs.Weather)
	auth.HandleFunc("/meteo", weatherH.Current).Methods(http.MethodGet)

	statsH := NewStatsHandler(svcs.Stats)
	auth.HandleFunc("/stats/dashboard", statsH.Dashboard).Methods(http.MethodGet)

	notificationH := NewNotificationHandler(svcs.Notifications)
	auth.HandleFunc("/notifications", notificationH.List).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/lu", notificationH.MarkAsRead).Methods(http.MethodPut)

	return r
}

func healthHandler(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		checks := map[string]string{"database": "ok", "redis": "ok"}

		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				checks["database"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}
		if rdb != nil {
			if err := rdb.Ping(r.Context()).Err(); err != nil {
				checks["redis"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(checks)
	}
}
