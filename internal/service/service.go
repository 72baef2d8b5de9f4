package service

import (
	"context"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/pricing"
	"agrimarket-backend/internal/repository"
)

type AuthService interface {
	// Signup creates the account and its initial profile atomically and
	// returns the signed-in user with its token pair.
	Signup(ctx context.Context, email, telephone, password string, profile *domain.Profile) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	// Logout is idempotent: it succeeds whether or not the token is
	// still valid.
	Logout(ctx context.Context, refreshToken string) error
}

type ProfileService interface {
	// GetMe returns the account and its profile. The profile is nil for
	// an account that never completed one; that is a valid state, not an
	// error.
	GetMe(ctx context.Context, userID int32) (*domain.User, *domain.Profile, error)
	UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	// RequireComplete returns the profile or ErrProfileIncomplete.
	RequireComplete(ctx context.Context, userID int32) (*domain.Profile, error)
}

// Viewer carries the requesting user's position when known. Distance
// computation, proximity sorting and the radius filter silently degrade
// without it.
type Viewer struct {
	Latitude  *float64
	Longitude *float64
	RadiusKM  *float64
}

type ListingService interface {
	Create(ctx context.Context, userID int32, l *domain.Listing) (*domain.Listing, error)
	Get(ctx context.Context, id int32, v Viewer) (*domain.Listing, error)
	Update(ctx context.Context, userID int32, l *domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, userID, id int32) error
	Search(ctx context.Context, f repository.ListingFilter, v Viewer, page, pageSize int32) ([]domain.Listing, int32, error)
	ListMine(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Listing, int32, error)
}

type EquipmentService interface {
	Create(ctx context.Context, userID int32, e *domain.Equipment) (*domain.Equipment, error)
	Get(ctx context.Context, id int32, v Viewer) (*domain.Equipment, error)
	Update(ctx context.Context, userID int32, e *domain.Equipment) (*domain.Equipment, error)
	Delete(ctx context.Context, userID, id int32) error
	Search(ctx context.Context, f repository.EquipmentFilter, v Viewer, page, pageSize int32) ([]domain.Equipment, int32, error)
	ListMine(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Equipment, int32, error)
	// AddReview accepts one review per completed reservation, from its
	// renter only.
	AddReview(ctx context.Context, userID, equipmentID, reservationID, rating int32, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context, equipmentID int32) ([]domain.Review, error)
}

type ReservationService interface {
	Create(ctx context.Context, renterID, equipmentID int32, startDate, endDate string) (*domain.Reservation, error)
	Quote(ctx context.Context, equipmentID int32, startDate, endDate string) (*pricing.Quote, error)
	Get(ctx context.Context, userID, id int32) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, userID, id int32, status domain.ReservationStatus) (*domain.Reservation, error)
	ListMine(ctx context.Context, renterID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListReceived(ctx context.Context, ownerID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
}

type ReferenceService interface {
	ProductCategories(ctx context.Context) ([]domain.Category, error)
	EquipmentCategories(ctx context.Context) ([]domain.Category, error)
	States(ctx context.Context) ([]domain.RefItem, error)
	Crops(ctx context.Context) ([]domain.RefItem, error)
	// Refresh reloads all four cached sets from the store.
	Refresh(ctx context.Context) error
}

type DiagnosisService interface {
	Diagnose(ctx context.Context, userID int32, imageURI string) (*domain.DiagnosisResult, error)
	History(ctx context.Context, userID int32) ([]domain.DiagnosisResult, error)
	RemoveFromHistory(ctx context.Context, userID int32, entryID string) error
	ClearHistory(ctx context.Context, userID int32) error
}

type WeatherService interface {
	Current(ctx context.Context, latitude, longitude float64) (*domain.WeatherReport, error)
}

type StatsService interface {
	UserStats(ctx context.Context, userID int32) (*domain.UserStats, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	ActiveUsersSince(ctx context.Context, since time.Time) (int32, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID int32, title, message string, attributes map[string]string) error
	List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendReservationRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentName string, startDate, endDate string) error
	SendReservationStatusNotification(ctx context.Context, renterEmail, equipmentName string, status domain.ReservationStatus) error
}
