package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devconnector/internal/domain"
)

// PostRepository define el contrato de persistencia para publicaciones.
// Likes y comentarios se reescriben junto con la fila del post en Update.
type PostRepository interface {
	Create(ctx context.Context, post domain.Post) error
	Update(ctx context.Context, post domain.Post) error
	GetByID(ctx context.Context, id string) (domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error
}

// PgPostRepository implementa PostRepository usando pgxpool.
type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) Create(ctx context.Context, post domain.Post) error {
	const query = `
		INSERT INTO posts (id, user_id, body, name, avatar, likes, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.UserID,
		post.Text,
		post.Name,
		post.Avatar,
		post.Likes,
		post.Comments,
		post.CreatedAt,
	)
	return err
}

func (r *PgPostRepository) Update(ctx context.Context, post domain.Post) error {
	const query = `
		UPDATE posts
		SET body = $2, likes = $3, comments = $4
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, post.ID, post.Text, post.Likes, post.Comments)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgPostRepository) GetByID(ctx context.Context, id string) (domain.Post, error) {
	const query = `
		SELECT id, user_id, body, name, avatar, likes, comments, created_at
		FROM posts
		WHERE id = $1
	`
	return r.scanPost(r.pool.QueryRow(ctx, query, id))
}

func (r *PgPostRepository) List(ctx context.Context) ([]domain.Post, error) {
	const query = `
		SELECT id, user_id, body, name, avatar, likes, comments, created_at
		FROM posts
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := r.scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *PgPostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func (r *PgPostRepository) scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Text,
		&p.Name,
		&p.Avatar,
		&p.Likes,
		&p.Comments,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Post{}, err
	}
	return p, err
}
