package postgres

import (
	"context"
	"database/sql"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListProductCategories(ctx context.Context) ([]domain.Category, error) {
	return r.listCategories(ctx, "categories_produits")
}

func (r *categoryRepository) ListEquipmentCategories(ctx context.Context) ([]domain.Category, error) {
	return r.listCategories(ctx, "categories_equipements")
}

func (r *categoryRepository) listCategories(ctx context.Context, table string) ([]domain.Category, error) {
	query := `SELECT id, nom, COALESCE(icone, '') FROM ` + table + ` ORDER BY nom ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoryRepository) ListStates(ctx context.Context) ([]domain.RefItem, error) {
	return r.listRef(ctx, "etats_nigeria")
}

func (r *categoryRepository) ListCrops(ctx context.Context) ([]domain.RefItem, error) {
	return r.listRef(ctx, "cultures_disponibles")
}

func (r *categoryRepository) listRef(ctx context.Context, table string) ([]domain.RefItem, error) {
	query := `SELECT id, nom FROM ` + table + ` ORDER BY nom ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RefItem
	for rows.Next() {
		var it domain.RefItem
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
