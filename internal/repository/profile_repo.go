package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devconnector/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
// Las sub-colecciones (experiencia, educación, social) viven embebidas en
// la fila del perfil y se reescriben completas en cada Update.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	Update(ctx context.Context, profile domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (domain.Profile, error)
	GetByHandle(ctx context.Context, handle string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `
	id, user_id, handle, company, website, location, status, skills,
	bio, github_username, social, experience, education, created_at
`

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	const query = `
		INSERT INTO profiles (
			id, user_id, handle, company, website, location, status, skills,
			bio, github_username, social, experience, education, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Handle,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Status,
		profile.Skills,
		profile.Bio,
		profile.GithubUsername,
		profile.Social,
		profile.Experience,
		profile.Education,
		profile.CreatedAt,
	)
	return err
}

func (r *PgProfileRepository) Update(ctx context.Context, profile domain.Profile) error {
	const query = `
		UPDATE profiles
		SET handle = $2, company = $3, website = $4, location = $5,
			status = $6, skills = $7, bio = $8, github_username = $9,
			social = $10, experience = $11, education = $12
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Handle,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Status,
		profile.Skills,
		profile.Bio,
		profile.GithubUsername,
		profile.Social,
		profile.Experience,
		profile.Education,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanProfile(r.pool.QueryRow(ctx, query, userID))
}

func (r *PgProfileRepository) GetByHandle(ctx context.Context, handle string) (domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE handle = $1`
	return r.scanProfile(r.pool.QueryRow(ctx, query, handle))
}

func (r *PgProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *PgProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func (r *PgProfileRepository) scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Handle,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Status,
		&p.Skills,
		&p.Bio,
		&p.GithubUsername,
		&p.Social,
		&p.Experience,
		&p.Education,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	return p, err
}
