package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRepo(pool *pgxpool.Pool, log *slog.Logger) *Repo {
	return &Repo{pool: pool, log: log}
}

// Record appends a system event. Analytics must never break the
// request that produced them, so failures are logged and swallowed.
func (r *Repo) Record(ctx context.Context, eventType, endpoint string, details map[string]any) {
	payload, err := json.Marshal(details)
	if err != nil {
		r.log.Warn("event details marshal failed", "event", eventType, "err", err)
		payload = []byte("{}")
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO system_events (event_type, endpoint, user_id, session_id, details)
		VALUES ($1,$2,$3,$4,$5)
	`, eventType, endpoint, "system", uuid.NewString(), payload)
	if err != nil {
		r.log.Warn("event record failed", "event", eventType, "err", err)
	}
}

func (r *Repo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_type, endpoint, user_id, session_id, details, created_at
		FROM system_events ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.Endpoint, &e.UserID,
			&e.SessionID, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
