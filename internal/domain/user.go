package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Telephone    string    `json:"telephone"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}

type UserType string

const (
	UserTypeProducer        UserType = "producteur"
	UserTypeBuyer           UserType = "acheteur"
	UserTypeServiceProvider UserType = "prestataire"
	UserTypeAgent           UserType = "agent"
	UserTypeCooperative     UserType = "cooperative"
	UserTypeProcessor       UserType = "transformateur"
)

// Profile is the public identity of a user. A user without a profile is
// a valid state ("authenticated but profile-incomplete") and must not be
// confused with an unauthenticated request.
type Profile struct {
	UserID       int32      `json:"user_id"`
	FullName     string     `json:"full_name"`
	Company      string     `json:"company,omitempty"`
	Telephone    string     `json:"telephone"`
	Email        string     `json:"email,omitempty"`
	WhatsApp     string     `json:"whatsapp,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	State        string     `json:"state"`
	Commune      string     `json:"commune,omitempty"`
	Village      string     `json:"village,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Sex          string     `json:"sex,omitempty"`
	AgeBracket   string     `json:"age_bracket,omitempty"`
	UserTypes    []string   `json:"user_types"`
	Crops        []string   `json:"crops"`
	AreaHectares *float64   `json:"area_hectares,omitempty"`
	Verified     bool       `json:"verified"`
	LastSeenOn   *time.Time `json:"last_seen_on,omitempty"`
	CreatedOn    time.Time  `json:"created_on"`
}
