package postgres

import (
	"database/sql"

	"agrimarket-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProfileRepository
	repository.ListingRepository
	repository.EquipmentRepository
	repository.ReservationRepository
	repository.ReviewRepository
	repository.CategoryRepository
	repository.NotificationRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		ListingRepository:      NewListingRepository(db),
		EquipmentRepository:    NewEquipmentRepository(db),
		ReservationRepository:  NewReservationRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		StatsRepository:        NewStatsRepository(db),
	}
}
