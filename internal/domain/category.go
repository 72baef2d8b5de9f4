package domain

// Category is reference data, read-only from the application's
// perspective. Product and equipment categories are two independent
// sets.
type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// RefItem is a flat reference value (state, crop).
type RefItem struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
