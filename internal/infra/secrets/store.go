package secrets

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a named secret does not exist.
var ErrNotFound = errors.New("secret not found")

// Store is the external configuration store the pricing multipliers
// are read from. Values are opaque strings (JSON payloads by
// convention); callers own parsing.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
}

// Repo is the Postgres-backed Store.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Get(ctx context.Context, name string) (string, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT value FROM app_secrets WHERE name = $1
	`, name)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *Repo) Set(ctx context.Context, name, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO app_secrets (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, name, value)
	return err
}

// Static is an in-memory Store used in tests and as a zero-dependency
// fallback when no database is configured.
type Static map[string]string

func (s Static) Get(_ context.Context, name string) (string, error) {
	v, ok := s[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}
