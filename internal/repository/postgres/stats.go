package postgres

import (
	"context"
	"database/sql"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) UserStats(ctx context.Context, userID int32) (*domain.UserStats, error) {
	s := &domain.UserStats{}
	query := `SELECT
	            (SELECT count(*) FROM annonces WHERE user_id = $1 AND statut = 'disponible'),
	            (SELECT count(*) FROM annonces WHERE user_id = $1 AND statut = 'vendu'),
	            (SELECT count(*) FROM equipements WHERE user_id = $1),
	            (SELECT count(*) FROM reservations_equipements WHERE locataire_id = $1),
	            (SELECT count(*) FROM reservations_equipements WHERE proprietaire_id = $1)`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ActiveListings, &s.SoldListings, &s.Equipment,
		&s.ReservationsMade, &s.ReservationsReceived)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *statsRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	s := &domain.DashboardStats{}
	query := `SELECT
	            (SELECT count(*) FROM users),
	            (SELECT count(*) FROM profiles),
	            (SELECT count(*) FROM annonces WHERE statut = 'disponible'),
	            (SELECT count(*) FROM equipements WHERE statut = 'disponible'),
	            (SELECT count(*) FROM reservations_equipements WHERE statut IN ('en_attente', 'confirmee', 'en_cours'))`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Users, &s.Profiles, &s.ActiveListings, &s.AvailableEquipment, &s.ActiveReservations)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *statsRepository) ActiveUsersSince(ctx context.Context, since time.Time) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM profiles WHERE derniere_connexion >= $1`
	err := r.db.QueryRowContext(ctx, query, since).Scan(&count)
	return count, err
}
