package leads

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Create(ctx context.Context, l Lead) (*Lead, error) {
	if l.Status == "" {
		l.Status = StatusNew
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (name, email, phone, address, source, status, notes, session_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, name, email, phone, address, source, status, notes, session_id, created_at, updated_at
	`, l.Name, l.Email, l.Phone, l.Address, l.Source, l.Status, l.Notes, l.SessionID)
	return scanLead(row)
}

func (r *Repo) Get(ctx context.Context, id int64) (*Lead, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, address, source, status, notes, session_id, created_at, updated_at
		FROM leads WHERE id = $1
	`, id)
	l, err := scanLead(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return l, err
}

// Update overwrites the mutable lead fields and bumps updated_at.
func (r *Repo) Update(ctx context.Context, l Lead) (*Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads SET
			name = $2, email = $3, phone = $4, address = $5,
			source = $6, status = $7, notes = $8, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, phone, address, source, status, notes, session_id, created_at, updated_at
	`, l.ID, l.Name, l.Email, l.Phone, l.Address, l.Source, l.Status, l.Notes)
	lead, err := scanLead(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return lead, err
}

func (r *Repo) Search(ctx context.Context, f SearchFilter) ([]Lead, error) {
	q := `
		SELECT id, name, email, phone, address, source, status, notes, session_id, created_at, updated_at
		FROM leads WHERE 1=1`
	args := []any{}
	if f.Status != "" {
		args = append(args, f.Status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Source != "" {
		args = append(args, f.Source)
		q += fmt.Sprintf(" AND source = $%d", len(args))
	}
	if f.Email != "" {
		args = append(args, f.Email)
		q += fmt.Sprintf(" AND email = $%d", len(args))
	}
	q += " ORDER BY created_at DESC"
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	args = append(args, limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lead{}
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Address, &l.Source,
			&l.Status, &l.Notes, &l.SessionID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanLead(row pgx.Row) (*Lead, error) {
	var l Lead
	if err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Address, &l.Source,
		&l.Status, &l.Notes, &l.SessionID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
