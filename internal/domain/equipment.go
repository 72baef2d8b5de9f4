package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "disponible"
	EquipmentStatusRented      EquipmentStatus = "loue"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusSuspended   EquipmentStatus = "suspendu"
)

type Equipment struct {
	ID          int32           `json:"id"`
	OwnerID     int32           `json:"owner_id"`
	Owner       *Profile        `json:"owner,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int32           `json:"category_id"`
	PricePerDay float64         `json:"price_per_day"`
	// Weekly and monthly tiers are optional. When present they must
	// satisfy day <= week <= month at validation time.
	PricePerWeek    *float64        `json:"price_per_week,omitempty"`
	PricePerMonth   *float64        `json:"price_per_month,omitempty"`
	Status          EquipmentStatus `json:"status"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	ServiceRadiusKM *float64        `json:"service_radius_km,omitempty"`
	Availability    string          `json:"availability,omitempty"`
	Characteristics string          `json:"characteristics,omitempty"`
	Images          []string        `json:"images"`
	Location        string          `json:"location"`
	RatingAvg       float64         `json:"rating_avg"`
	RatingCount     int32           `json:"rating_count"`
	DistanceKM      *float64        `json:"distance_km,omitempty"`
	PublishedAt     time.Time       `json:"published_at"`
}
