package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, equipement_id, locataire_id, proprietaire_id,
	date_debut, date_fin, prix_jour, prix_total, statut, created_on, updated_on`

func scanReservation(row interface{ Scan(...any) error }, rv *domain.Reservation) error {
	return row.Scan(&rv.ID, &rv.EquipmentID, &rv.RenterID, &rv.OwnerID,
		&rv.StartDate, &rv.EndDate, &rv.PricePerDay, &rv.TotalPrice, &rv.Status,
		&rv.CreatedOn, &rv.UpdatedOn)
}

// Create locks the equipment row, checks for overlapping blocking
// reservations, and inserts — all in one transaction, so two
// concurrent requests for the same dates cannot both succeed.
func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var equipmentID int32
	lockQuery := `SELECT id FROM equipements WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, rv.EquipmentID).Scan(&equipmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	var overlapping int32
	overlapQuery := `SELECT count(*) FROM reservations_equipements
	                 WHERE equipement_id = $1
	                   AND statut IN ('en_attente', 'confirmee', 'en_cours')
	                   AND date_debut <= $3 AND date_fin >= $2`
	if err := tx.QueryRowContext(ctx, overlapQuery, rv.EquipmentID, rv.StartDate, rv.EndDate).
		Scan(&overlapping); err != nil {
		return err
	}
	if overlapping > 0 {
		return repository.ErrOverlap
	}

	now := time.Now()
	insert := `INSERT INTO reservations_equipements
	             (equipement_id, locataire_id, proprietaire_id, date_debut, date_fin,
	              prix_jour, prix_total, statut, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert,
		rv.EquipmentID, rv.RenterID, rv.OwnerID, rv.StartDate, rv.EndDate,
		rv.PricePerDay, rv.TotalPrice, rv.Status, now).Scan(&rv.ID); err != nil {
		return translateErr(err)
	}
	rv.CreatedOn = now
	rv.UpdatedOn = now

	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations_equipements WHERE id = $1`
	err := scanReservation(r.db.QueryRowContext(ctx, query, id), rv)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	query := `UPDATE reservations_equipements SET statut = $1, updated_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return r.list(ctx, "locataire_id", renterID, status, page, pageSize)
}

func (r *reservationRepository) ListByOwner(ctx context.Context, ownerID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return r.list(ctx, "proprietaire_id", ownerID, status, page, pageSize)
}

func (r *reservationRepository) list(ctx context.Context, column string, userID int32, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	base := `SELECT ` + reservationColumns + ` FROM reservations_equipements WHERE ` + column + ` = $1`
	args := []any{userID}
	argIdx := 2

	if status != "" {
		base += fmt.Sprintf(" AND statut = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	base += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := scanReservation(rows, &rv); err != nil {
			return nil, 0, err
		}
		items = append(items, rv)
	}
	return items, count, rows.Err()
}
