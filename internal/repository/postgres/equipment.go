package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"

	"github.com/lib/pq"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, user_id, nom, COALESCE(description, ''), categorie_id,
	prix_jour, prix_semaine, prix_mois, statut, latitude, longitude, rayon_service_km,
	COALESCE(disponibilite, ''), COALESCE(caracteristiques, ''), images,
	COALESCE(localisation, ''), note_moyenne, nombre_avis, date_publication`

func scanEquipment(row interface{ Scan(...any) error }, e *domain.Equipment) error {
	return row.Scan(&e.ID, &e.OwnerID, &e.Name, &e.Description, &e.CategoryID,
		&e.PricePerDay, &e.PricePerWeek, &e.PricePerMonth, &e.Status,
		&e.Latitude, &e.Longitude, &e.ServiceRadiusKM,
		&e.Availability, &e.Characteristics, pq.Array(&e.Images),
		&e.Location, &e.RatingAvg, &e.RatingCount, &e.PublishedAt)
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipements (user_id, nom, description, categorie_id,
	            prix_jour, prix_semaine, prix_mois, statut, latitude, longitude, rayon_service_km,
	            disponibilite, caracteristiques, images, localisation, note_moyenne, nombre_avis, date_publication)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 0, 0, $16)
	          RETURNING id, date_publication`
	return translateErr(r.db.QueryRowContext(ctx, query,
		e.OwnerID, e.Name, e.Description, e.CategoryID,
		e.PricePerDay, e.PricePerWeek, e.PricePerMonth, e.Status, e.Latitude, e.Longitude, e.ServiceRadiusKM,
		e.Availability, e.Characteristics, pq.Array(e.Images), e.Location, time.Now()).
		Scan(&e.ID, &e.PublishedAt))
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT ` + equipmentColumns + ` FROM equipements WHERE id = $1`
	err := scanEquipment(r.db.QueryRowContext(ctx, query, id), e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipements SET nom=$1, description=$2, categorie_id=$3, prix_jour=$4,
	            prix_semaine=$5, prix_mois=$6, statut=$7, latitude=$8, longitude=$9,
	            rayon_service_km=$10, disponibilite=$11, caracteristiques=$12, images=$13, localisation=$14
	          WHERE id=$15`
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.Description, e.CategoryID, e.PricePerDay,
		e.PricePerWeek, e.PricePerMonth, e.Status, e.Latitude, e.Longitude,
		e.ServiceRadiusKM, e.Availability, e.Characteristics, pq.Array(e.Images), e.Location, e.ID)
	if err != nil {
		return translateErr(err)
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

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipements WHERE id = $1`, id)
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

func (r *equipmentRepository) Search(ctx context.Context, f repository.EquipmentFilter, page, pageSize int32) ([]domain.Equipment, int32, error) {
	base := `SELECT ` + equipmentColumns + ` FROM equipements WHERE 1=1`

	args := []any{}
	argIdx := 1

	if f.CategoryID > 0 {
		base += fmt.Sprintf(" AND categorie_id = $%d", argIdx)
		args = append(args, f.CategoryID)
		argIdx++
	}
	if f.Query != "" {
		base += fmt.Sprintf(" AND (nom ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+f.Query+"%")
		argIdx++
	}
	if f.Status != "" {
		base += fmt.Sprintf(" AND statut = $%d", argIdx)
		args = append(args, f.Status)
		argIdx++
	}
	if f.OwnerID > 0 {
		base += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, f.OwnerID)
		argIdx++
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case "prix_asc":
		base += " ORDER BY prix_jour ASC, date_publication DESC"
	case "prix_desc":
		base += " ORDER BY prix_jour DESC, date_publication DESC"
	default:
		base += " ORDER BY date_publication DESC"
	}

	offset := (page - 1) * pageSize
	base += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := scanEquipment(rows, &e); err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, count, rows.Err()
}

func (r *equipmentRepository) SetStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE equipements SET statut = $1 WHERE id = $2`, status, id)
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
