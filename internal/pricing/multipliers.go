package pricing

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/goodfaith/exteriors-backend/internal/infra/secrets"
)

// Secret names the multiplier payloads are stored under.
const (
	secretBaseMultiplier     = "base_price_multiplier"
	secretTypeMultipliers    = "type_multipliers"
	secretBrandMultipliers   = "brand_multipliers"
	secretMaterialMultiplier = "material_multiplier"
	secretOptionsPricing     = "options_pricing"
)

// OptionKind distinguishes the two shapes of option pricing.
type OptionKind string

const (
	OptionFixed      OptionKind = "fixed"
	OptionPercentage OptionKind = "percentage"
)

// OptionPricing is a tagged variant: fixed options carry Cost,
// percentage options carry Percentage (a fraction of material price).
type OptionPricing struct {
	Kind       OptionKind `json:"type"`
	Cost       float64    `json:"cost,omitempty"`
	Percentage float64    `json:"percentage,omitempty"`
}

// Amount resolves the option's cost against a window's material price.
// Unknown kinds cost nothing.
func (o OptionPricing) Amount(materialPrice float64) float64 {
	switch o.Kind {
	case OptionFixed:
		return o.Cost
	case OptionPercentage:
		return materialPrice * o.Percentage
	default:
		return 0
	}
}

// MultiplierTable is a resolved snapshot of every pricing adjustment.
// Selections not present in a map contribute no multiplier.
type MultiplierTable struct {
	Base      float64
	Types     map[string]float64
	Brands    map[string]float64
	Materials map[string]float64
	Options   map[string]OptionPricing
}

// DefaultTable is the table used when nothing is configured: base 1.0
// and no per-category adjustments.
func DefaultTable() MultiplierTable {
	return MultiplierTable{
		Base:      1.0,
		Types:     map[string]float64{},
		Brands:    map[string]float64{},
		Materials: map[string]float64{},
		Options:   map[string]OptionPricing{},
	}
}

func (t MultiplierTable) typeFactor(key string) float64     { return lookupFactor(t.Types, key) }
func (t MultiplierTable) brandFactor(key string) float64    { return lookupFactor(t.Brands, key) }
func (t MultiplierTable) materialFactor(key string) float64 { return lookupFactor(t.Materials, key) }

func lookupFactor(m map[string]float64, key string) float64 {
	if key == "" {
		return 1.0
	}
	if f, ok := m[key]; ok && f != 0 {
		return f
	}
	return 1.0
}

// Resolver builds MultiplierTables from the secret store. Every
// sub-load is independent; a failed or missing payload degrades that
// part to its default with a warning, never an error.
type Resolver struct {
	store secrets.Store
	log   *slog.Logger
}

func NewResolver(store secrets.Store, log *slog.Logger) *Resolver {
	return &Resolver{store: store, log: log}
}

// Resolve fetches the five multiplier payloads concurrently and merges
// them into a table. It never fails: partial config outage means
// partial defaults, not a dead pricing engine.
func (r *Resolver) Resolve(ctx context.Context) MultiplierTable {
	table := DefaultTable()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	load := func(name string, apply func(raw string) error) {
		defer wg.Done()
		raw, err := r.store.Get(ctx, name)
		if err != nil {
			if err != secrets.ErrNotFound {
				r.log.Warn("multiplier load failed", "secret", name, "err", err)
			}
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := apply(raw); err != nil {
			r.log.Warn("multiplier parse failed", "secret", name, "err", err)
		}
	}

	wg.Add(5)
	go load(secretBaseMultiplier, func(raw string) error {
		var payload struct {
			Multiplier float64 `json:"multiplier"`
		}
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return err
		}
		if payload.Multiplier != 0 {
			table.Base = payload.Multiplier
		}
		return nil
	})
	go load(secretTypeMultipliers, func(raw string) error {
		types := map[string]float64{}
		if err := json.Unmarshal([]byte(raw), &types); err != nil {
			return err
		}
		table.Types = types
		return nil
	})
	go load(secretBrandMultipliers, func(raw string) error {
		brands := map[string]float64{}
		if err := json.Unmarshal([]byte(raw), &brands); err != nil {
			return err
		}
		table.Brands = brands
		return nil
	})
	go load(secretMaterialMultiplier, func(raw string) error {
		materials := map[string]float64{}
		if err := json.Unmarshal([]byte(raw), &materials); err != nil {
			return err
		}
		table.Materials = materials
		return nil
	})
	go load(secretOptionsPricing, func(raw string) error {
		opts := map[string]OptionPricing{}
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			return err
		}
		for name, o := range opts {
			if o.Kind != OptionFixed && o.Kind != OptionPercentage {
				r.log.Warn("option with unknown pricing type ignored", "option", name, "type", string(o.Kind))
				delete(opts, name)
			}
		}
		table.Options = opts
		return nil
	})
	wg.Wait()

	return table
}
