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

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, user_id, titre, COALESCE(description, ''), prix, COALESCE(unite_prix, ''),
	COALESCE(quantite, ''), categorie_id, statut, images, COALESCE(localisation, ''), date_publication`

func scanListing(row interface{ Scan(...any) error }, l *domain.Listing) error {
	return row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Price, &l.PriceUnit,
		&l.Quantity, &l.CategoryID, &l.Status, pq.Array(&l.Images), &l.Location, &l.PublishedAt)
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO annonces (user_id, titre, description, prix, unite_prix, quantite,
	            categorie_id, statut, images, localisation, date_publication)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, date_publication`
	return translateErr(r.db.QueryRowContext(ctx, query,
		l.OwnerID, l.Title, l.Description, l.Price, l.PriceUnit, l.Quantity,
		l.CategoryID, l.Status, pq.Array(l.Images), l.Location, time.Now()).
		Scan(&l.ID, &l.PublishedAt))
}

func (r *listingRepository) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT ` + listingColumns + ` FROM annonces WHERE id = $1`
	err := scanListing(r.db.QueryRowContext(ctx, query, id), l)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE annonces SET titre=$1, description=$2, prix=$3, unite_prix=$4, quantite=$5,
	            categorie_id=$6, statut=$7, images=$8, localisation=$9
	          WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query,
		l.Title, l.Description, l.Price, l.PriceUnit, l.Quantity,
		l.CategoryID, l.Status, pq.Array(l.Images), l.Location, l.ID)
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

func (r *listingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM annonces WHERE id = $1`, id)
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

func (r *listingRepository) Search(ctx context.Context, f repository.ListingFilter, page, pageSize int32) ([]domain.Listing, int32, error) {
	base := `SELECT ` + listingColumns + ` FROM annonces WHERE 1=1`

	args := []any{}
	argIdx := 1

	if f.CategoryID > 0 {
		base += fmt.Sprintf(" AND categorie_id = $%d", argIdx)
		args = append(args, f.CategoryID)
		argIdx++
	}
	if f.Query != "" {
		base += fmt.Sprintf(" AND (titre ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx)
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
		base += " ORDER BY prix ASC, date_publication DESC"
	case "prix_desc":
		base += " ORDER BY prix DESC, date_publication DESC"
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

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, err
		}
		listings = append(listings, l)
	}
	return listings, count, rows.Err()
}
