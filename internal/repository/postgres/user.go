package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"agrimarket-backend/internal/domain"
	"agrimarket-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, telephone, password_hash, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, u.Email, u.Telephone, u.PasswordHash, time.Now()).
		Scan(&u.ID, &u.CreatedOn)
	return translateErr(err)
}

func (r *userRepository) CreateWithProfile(ctx context.Context, u *domain.User, p *domain.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO users (email, telephone, password_hash, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	if err := tx.QueryRowContext(ctx, query, u.Email, u.Telephone, u.PasswordHash, now).
		Scan(&u.ID, &u.CreatedOn); err != nil {
		return translateErr(err)
	}

	p.UserID = u.ID
	p.CreatedOn = now
	if err := insertProfile(ctx, tx, p); err != nil {
		return translateErr(err)
	}

	return tx.Commit()
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, COALESCE(telephone, ''), password_hash, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Telephone, &u.PasswordHash, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, COALESCE(telephone, ''), password_hash, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Telephone, &u.PasswordHash, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// translateErr maps driver-level failures onto repository sentinels.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
