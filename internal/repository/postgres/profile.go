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

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertProfile(ctx context.Context, q queryRower, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, nom_complet, entreprise, telephone, email, whatsapp, bio,
	            etat, commune, village, latitude, longitude, sexe, tranche_age,
	            types_utilisateur, cultures, superficie_hectares, verifie, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	          RETURNING user_id`
	return q.QueryRowContext(ctx, query,
		p.UserID, p.FullName, p.Company, p.Telephone, p.Email, p.WhatsApp, p.Bio,
		p.State, p.Commune, p.Village, p.Latitude, p.Longitude, p.Sex, p.AgeBracket,
		pq.Array(p.UserTypes), pq.Array(p.Crops), p.AreaHectares, p.Verified, p.CreatedOn,
	).Scan(&p.UserID)
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	p.CreatedOn = time.Now()
	return translateErr(insertProfile(ctx, r.db, p))
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, nom_complet, COALESCE(entreprise, ''), COALESCE(telephone, ''),
	            COALESCE(email, ''), COALESCE(whatsapp, ''), COALESCE(bio, ''),
	            COALESCE(etat, ''), COALESCE(commune, ''), COALESCE(village, ''),
	            latitude, longitude, COALESCE(sexe, ''), COALESCE(tranche_age, ''),
	            types_utilisateur, cultures, superficie_hectares, verifie, derniere_connexion, created_on
	          FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.FullName, &p.Company, &p.Telephone,
		&p.Email, &p.WhatsApp, &p.Bio,
		&p.State, &p.Commune, &p.Village,
		&p.Latitude, &p.Longitude, &p.Sex, &p.AgeBracket,
		pq.Array(&p.UserTypes), pq.Array(&p.Crops), &p.AreaHectares, &p.Verified, &p.LastSeenOn, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET nom_complet=$1, entreprise=$2, telephone=$3, email=$4, whatsapp=$5,
	            bio=$6, etat=$7, commune=$8, village=$9, latitude=$10, longitude=$11,
	            sexe=$12, tranche_age=$13, types_utilisateur=$14, cultures=$15, superficie_hectares=$16
	          WHERE user_id=$17`
	res, err := r.db.ExecContext(ctx, query,
		p.FullName, p.Company, p.Telephone, p.Email, p.WhatsApp,
		p.Bio, p.State, p.Commune, p.Village, p.Latitude, p.Longitude,
		p.Sex, p.AgeBracket, pq.Array(p.UserTypes), pq.Array(p.Crops), p.AreaHectares,
		p.UserID)
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

func (r *profileRepository) TouchLastSeen(ctx context.Context, userID int32) error {
	query := `UPDATE profiles SET derniere_connexion = $1 WHERE user_id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	return err
}
