package domain

import "time"

type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "disponible"
	ListingStatusSold      ListingStatus = "vendu"
	ListingStatusSuspended ListingStatus = "suspendu"
)

// MaxListingImages bounds the image set of a listing or equipment.
const MaxListingImages = 5

type Listing struct {
	ID          int32         `json:"id"`
	OwnerID     int32         `json:"owner_id"`
	Owner       *Profile      `json:"owner,omitempty"` // Populated when fetching listing details
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	PriceUnit   string        `json:"price_unit"`
	Quantity    string        `json:"quantity"`
	CategoryID  int32         `json:"category_id"`
	Status      ListingStatus `json:"status"`
	Images      []string      `json:"images"`
	Location    string        `json:"location"`
	// DistanceKM is computed per request from the caller's coordinate,
	// never stored.
	DistanceKM  *float64  `json:"distance_km,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
