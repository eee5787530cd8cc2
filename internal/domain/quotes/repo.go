package quotes

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

func (r *Repo) Create(ctx context.Context, q Quote) (*Quote, error) {
	if q.Status == "" {
		q.Status = StatusDraft
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO quotes (quote_id, lead_id, customer_name, estimate, total, status)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, quote_id, lead_id, customer_name, estimate, total, status, created_at, updated_at
	`, q.QuoteID, q.LeadID, q.CustomerName, q.EstimateJSON, q.Total, q.Status)
	return scanQuote(row)
}

func (r *Repo) Get(ctx context.Context, quoteID string) (*Quote, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, quote_id, lead_id, customer_name, estimate, total, status, created_at, updated_at
		FROM quotes WHERE quote_id = $1
	`, quoteID)
	q, err := scanQuote(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return q, err
}

// UpdateStatus moves a quote to next if the transition is allowed.
func (r *Repo) UpdateStatus(ctx context.Context, quoteID string, next Status) (*Quote, error) {
	q, err := r.Get(ctx, quoteID)
	if err != nil || q == nil {
		return nil, err
	}
	if !CanTransition(q.Status, next) {
		return nil, fmt.Errorf("quote %s: %w (%s -> %s)", quoteID, ErrInvalidTransition, q.Status, next)
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE quotes SET status = $2, updated_at = now()
		WHERE quote_id = $1
		RETURNING id, quote_id, lead_id, customer_name, estimate, total, status, created_at, updated_at
	`, quoteID, next)
	return scanQuote(row)
}

func (r *Repo) ListByLead(ctx context.Context, leadID int64) ([]Quote, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, quote_id, lead_id, customer_name, estimate, total, status, created_at, updated_at
		FROM quotes WHERE lead_id = $1 ORDER BY created_at DESC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Quote{}
	for rows.Next() {
		var q Quote
		if err := rows.Scan(&q.ID, &q.QuoteID, &q.LeadID, &q.CustomerName,
			&q.EstimateJSON, &q.Total, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanQuote(row pgx.Row) (*Quote, error) {
	var q Quote
	if err := row.Scan(&q.ID, &q.QuoteID, &q.LeadID, &q.CustomerName,
		&q.EstimateJSON, &q.Total, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}
