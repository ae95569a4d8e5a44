package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
		SELECT id, username, password_hash, full_name, role, created_at
		FROM users
		WHERE username = $1`
	var u User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
		INSERT INTO users (username, password_hash, full_name, role, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		u.Username, u.PasswordHash, u.FullName, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}
