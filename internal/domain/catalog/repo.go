package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, brand, window_type, material, series, unit_price, active
		FROM products WHERE active = TRUE ORDER BY brand, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.WindowType, &p.Material,
			&p.Series, &p.UnitPrice, &p.Active); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) ListBrands(ctx context.Context) ([]Brand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, multiplier, active
		FROM window_brands WHERE active = TRUE ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Brand{}
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Multiplier, &b.Active); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) ListWindowTypes(ctx context.Context) ([]WindowType, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, key, display_name, multiplier, active
		FROM window_types WHERE active = TRUE ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []WindowType{}
	for rows.Next() {
		var t WindowType
		if err := rows.Scan(&t.ID, &t.Key, &t.DisplayName, &t.Multiplier, &t.Active); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
