package pricing

import (
	"sort"
	"time"
)

// Tier is one of the four fixed pricing presets scaling the base unit
// price.
type Tier struct {
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// Tiers in ascending multiplier order.
var Tiers = []Tier{
	{Name: "economy", Label: "Economy", Multiplier: 0.8},
	{Name: "standard", Label: "Standard", Multiplier: 1.0},
	{Name: "premium", Label: "Premium", Multiplier: 1.3},
	{Name: "luxury", Label: "Luxury", Multiplier: 1.6},
}

// TierByName returns the tier preset for name, falling back to
// standard for anything unrecognized.
func TierByName(name string) Tier {
	for _, t := range Tiers {
		if t.Name == name {
			return t
		}
	}
	return Tiers[1]
}

// TierComparison is one tier's row in a comparison: its total, the
// per-window average and the full breakdown behind it.
type TierComparison struct {
	Tier           string    `json:"tier"`
	Label          string    `json:"label"`
	Multiplier     float64   `json:"multiplier"`
	TotalPrice     float64   `json:"totalPrice"`
	PricePerWindow float64   `json:"pricePerWindow"`
	Breakdown      Breakdown `json:"breakdown"`
}

// TierComparisonResult wraps the sorted rows with request metadata.
type TierComparisonResult struct {
	Comparisons []TierComparison `json:"comparisons"`
	WindowCount int              `json:"windowCount"`
	Timestamp   time.Time        `json:"timestamp"`
}

// CompareTiers reruns the full pipeline once per tier with the base
// unit price rescaled by the tier multiplier, all against the same
// resolved table. A tier whose run fails is omitted; the comparison
// itself only fails when the measurement list is invalid for every
// tier alike.
func CompareTiers(measurements []Measurement, baseSelections Selections, table MultiplierTable) (*TierComparisonResult, error) {
	if len(measurements) == 0 {
		return nil, &ValidationError{Code: CodeRequiredFieldMissing, Message: "measurements array is required"}
	}

	unitPrice := baseSelections.unitPrice()

	rows := make([]TierComparison, 0, len(Tiers))
	for _, tier := range Tiers {
		sel := baseSelections
		sel.BaseUnitPrice = unitPrice * tier.Multiplier

		est, err := CalculateEstimate(EstimateRequest{
			Measurements: measurements,
			Selections:   sel,
		}, table)
		if err != nil {
			continue
		}

		rows = append(rows, TierComparison{
			Tier:           tier.Name,
			Label:          tier.Label,
			Multiplier:     tier.Multiplier,
			TotalPrice:     est.Breakdown.FinalTotal,
			PricePerWindow: est.Breakdown.FinalTotal / float64(len(measurements)),
			Breakdown:      est.Breakdown,
		})
	}

	// Cheapest tier first.
	sort.Slice(rows, func(i, j int) bool { return rows[i].TotalPrice < rows[j].TotalPrice })

	return &TierComparisonResult{
		Comparisons: rows,
		WindowCount: len(measurements),
		Timestamp:   time.Now().UTC(),
	}, nil
}
