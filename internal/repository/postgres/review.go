package postgres

import (
	"context"
	"database/sql"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review and recomputes the equipment rating
// aggregate in the same transaction, so note_moyenne/nombre_avis never
// drift from the review rows.
func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `INSERT INTO evaluations_equipements
	             (equipement_id, reservation_id, evaluateur_id, note, commentaire, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	if err := tx.QueryRowContext(ctx, insert,
		rv.EquipmentID, rv.ReservationID, rv.RaterID, rv.Rating, rv.Comment, now).
		Scan(&rv.ID); err != nil {
		return translateErr(err)
	}
	rv.CreatedOn = now

	aggregate := `UPDATE equipements SET
	                note_moyenne = sub.avg_note,
	                nombre_avis  = sub.cnt
	              FROM (SELECT AVG(note)::numeric(3,2) AS avg_note, count(*) AS cnt
	                    FROM evaluations_equipements WHERE equipement_id = $1) AS sub
	              WHERE id = $1`
	if _, err := tx.ExecContext(ctx, aggregate, rv.EquipmentID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reviewRepository) ListByEquipment(ctx context.Context, equipmentID int32) ([]domain.Review, error) {
	query := `SELECT id, equipement_id, reservation_id, evaluateur_id, note, COALESCE(commentaire, ''), created_on
	          FROM evaluations_equipements WHERE equipement_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.EquipmentID, &rv.ReservationID, &rv.RaterID,
			&rv.Rating, &rv.Comment, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
