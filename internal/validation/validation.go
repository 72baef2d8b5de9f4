// Package validation runs the synchronous, field-scoped checks that
// gate every create/update before it reaches the store.
package validation

import (
	"fmt"
	"strings"

	"agrimarket-backend/internal/domain"
)

// FieldErrors maps a field name to a human-readable problem. It is the
// error returned by all validators so handlers can surface problems
// inline next to the offending field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// orNil turns an empty map into a nil error.
func (e FieldErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func ValidateListing(l *domain.Listing, categories []domain.Category) error {
	errs := FieldErrors{}

	if strings.TrimSpace(l.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(l.Description) == "" {
		errs["description"] = "description is required"
	}
	if l.Price <= 0 {
		errs["price"] = "price must be a positive number"
	}
	if strings.TrimSpace(l.Quantity) == "" {
		errs["quantity"] = "available quantity is required"
	}
	if !categoryExists(l.CategoryID, categories) {
		errs["category_id"] = "category must be one of the available categories"
	}
	validateImages(errs, l.Images)
	if l.Status != "" {
		switch l.Status {
		case domain.ListingStatusAvailable, domain.ListingStatusSold, domain.ListingStatusSuspended:
		default:
			errs["status"] = fmt.Sprintf("unknown status %q", l.Status)
		}
	}

	return errs.orNil()
}

func ValidateEquipment(e *domain.Equipment, categories []domain.Category) error {
	errs := FieldErrors{}

	if strings.TrimSpace(e.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(e.Description) == "" {
		errs["description"] = "description is required"
	}
	if !categoryExists(e.CategoryID, categories) {
		errs["category_id"] = "category must be one of the available categories"
	}
	validateImages(errs, e.Images)
	ValidateTierPricing(errs, e.PricePerDay, e.PricePerWeek, e.PricePerMonth)
	if e.Status != "" {
		switch e.Status {
		case domain.EquipmentStatusAvailable, domain.EquipmentStatusRented,
			domain.EquipmentStatusMaintenance, domain.EquipmentStatusSuspended:
		default:
			errs["status"] = fmt.Sprintf("unknown status %q", e.Status)
		}
	}

	return errs.orNil()
}

// ValidateTierPricing enforces the tier ordering: each present tier is
// strictly positive, week >= day, and month >= week when week is
// present, else month >= day.
func ValidateTierPricing(errs FieldErrors, day float64, week, month *float64) {
	if day <= 0 {
		errs["price_per_day"] = "daily price must be a positive number"
	}
	if week != nil {
		if *week <= 0 {
			errs["price_per_week"] = "weekly price must be a positive number"
		} else if *week < day {
			errs["price_per_week"] = "weekly price must not be below the daily price"
		}
	}
	if month != nil {
		if *month <= 0 {
			errs["price_per_month"] = "monthly price must be a positive number"
		} else {
			floor := day
			if week != nil && *week > 0 {
				floor = *week
			}
			if *month < floor {
				errs["price_per_month"] = "monthly price must not be below the weekly (or daily) price"
			}
		}
	}
}

// TierPricingOK is the convenience predicate form of
// ValidateTierPricing, treating a tier value of 0 as absent.
func TierPricingOK(day float64, week, month float64) bool {
	errs := FieldErrors{}
	var w, m *float64
	if week > 0 {
		w = &week
	}
	if month > 0 {
		m = &month
	}
	ValidateTierPricing(errs, day, w, m)
	return len(errs) == 0
}

func ValidateProfile(p *domain.Profile) error {
	errs := FieldErrors{}
	if strings.TrimSpace(p.FullName) == "" {
		errs["full_name"] = "full name is required"
	}
	if strings.TrimSpace(p.Telephone) == "" {
		errs["telephone"] = "telephone is required"
	}
	if strings.TrimSpace(p.State) == "" {
		errs["state"] = "state is required"
	}
	for _, ut := range p.UserTypes {
		switch domain.UserType(ut) {
		case domain.UserTypeProducer, domain.UserTypeBuyer, domain.UserTypeServiceProvider,
			domain.UserTypeAgent, domain.UserTypeCooperative, domain.UserTypeProcessor:
		default:
			errs["user_types"] = fmt.Sprintf("unknown user type %q", ut)
		}
	}
	return errs.orNil()
}

func ValidateReview(rating int32, comment string) error {
	errs := FieldErrors{}
	if rating < 1 || rating > 5 {
		errs["rating"] = "rating must be between 1 and 5"
	}
	return errs.orNil()
}

func validateImages(errs FieldErrors, images []string) {
	if len(images) == 0 {
		errs["images"] = "at least one image is required"
	}
	if len(images) > domain.MaxListingImages {
		errs["images"] = fmt.Sprintf("at most %d images are allowed", domain.MaxListingImages)
	}
}

func categoryExists(id int32, categories []domain.Category) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
