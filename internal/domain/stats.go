package domain

// UserStats aggregates a user's marketplace activity.
type UserStats struct {
	ActiveListings       int32 `json:"active_listings"`
	SoldListings         int32 `json:"sold_listings"`
	Equipment            int32 `json:"equipment"`
	ReservationsMade     int32 `json:"reservations_made"`
	ReservationsReceived int32 `json:"reservations_received"`
}

// DashboardStats aggregates platform-wide counters.
type DashboardStats struct {
	Users              int32 `json:"users"`
	Profiles           int32 `json:"profiles"`
	ActiveListings     int32 `json:"active_listings"`
	AvailableEquipment int32 `json:"available_equipment"`
	ActiveReservations int32 `json:"active_reservations"`
}
