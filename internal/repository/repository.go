package repository

import (
	"context"
	"errors"
	"time"

	"agrimarket-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a targeted row does not exist (or
	// an update/delete matched nothing).
	ErrNotFound = errors.New("not found")
	// ErrOverlap is returned when a reservation would overlap a
	// blocking reservation on the same equipment.
	ErrOverlap = errors.New("reservation dates overlap an existing reservation")
	// ErrDuplicate is returned on unique constraint violations
	// (e.g. email already registered, reservation already reviewed).
	ErrDuplicate = errors.New("already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// CreateWithProfile inserts the account and its initial profile in
	// a single transaction.
	CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	// TouchLastSeen stamps derniere_connexion; callers treat failure as
	// non-critical.
	TouchLastSeen(ctx context.Context, userID int32) error
}

// ListingFilter narrows a listing search. Zero values mean "no filter".
type ListingFilter struct {
	CategoryID int32
	Query      string // substring match against title/description
	Status     domain.ListingStatus
	OwnerID    int32
	Sort       string // "recent" (default), "prix_asc", "prix_desc"
}

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int32) (*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id int32) error
	Search(ctx context.Context, f ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error)
}

type EquipmentFilter struct {
	CategoryID int32
	Query      string
	Status     domain.EquipmentStatus
	OwnerID    int32
	Sort       string
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
	Search(ctx context.Context, f EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error)
	SetStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error
}

type ReservationRepository interface {
	// Create inserts the reservation after verifying, in the same
	// transaction, that no blocking reservation overlaps the requested
	// date range on the same equipment. Returns ErrOverlap otherwise.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	ListByRenter(ctx context.Context, renterID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
}

type ReviewRepository interface {
	// Create inserts the review and refreshes the equipment rating
	// aggregate in one transaction.
	Create(ctx context.Context, rv *domain.Review) error
	ListByEquipment(ctx context.Context, equipmentID int32) ([]domain.Review, error)
}

type CategoryRepository interface {
	ListProductCategories(ctx context.Context) ([]domain.Category, error)
	ListEquipmentCategories(ctx context.Context) ([]domain.Category, error)
	ListStates(ctx context.Context) ([]domain.RefItem, error)
	ListCrops(ctx context.Context) ([]domain.RefItem, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type StatsRepository interface {
	UserStats(ctx context.Context, userID int32) (*domain.UserStats, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	ActiveUsersSince(ctx context.Context, since time.Time) (int32, error)
}
