package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "en_attente"
	ReservationStatusConfirmed  ReservationStatus = "confirmee"
	ReservationStatusInProgress ReservationStatus = "en_cours"
	ReservationStatusCompleted  ReservationStatus = "terminee"
	ReservationStatusCancelled  ReservationStatus = "annulee"
)

// Blocking reports whether a reservation in status s occupies its
// equipment for the purposes of the overlap guard.
func (s ReservationStatus) Blocking() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusInProgress:
		return true
	}
	return false
}

type Reservation struct {
	ID          int32      `json:"id"`
	EquipmentID int32      `json:"equipment_id"`
	Equipment   *Equipment `json:"equipment,omitempty"`
	RenterID    int32      `json:"renter_id"`
	OwnerID     int32      `json:"owner_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	// Price snapshot captured at creation time; later equipment price
	// changes do not affect an existing reservation.
	PricePerDay float64           `json:"price_per_day"`
	TotalPrice  float64           `json:"total_price"`
	Status      ReservationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}

type Review struct {
	ID            int32     `json:"id"`
	EquipmentID   int32     `json:"equipment_id"`
	ReservationID int32     `json:"reservation_id"`
	RaterID       int32     `json:"rater_id"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
}
