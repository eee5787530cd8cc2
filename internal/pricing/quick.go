package pricing

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Ballpark rate used by the square-footage quick estimator. Real
// estimates come from measurements and the multiplier table; this is
// marketing-page math.
const basePricePerSqFt = 150.0

const quickEstimateDisclaimer = "This is a preliminary estimate. Final pricing may vary based on specific measurements, product selections, and site conditions."

// QuickBreakdown is the simplified cost record of a quick estimate.
type QuickBreakdown struct {
	BaseCost   float64 `json:"baseCost"`
	LaborCost  float64 `json:"laborCost"`
	OptionCost float64 `json:"optionCost"`
	Overhead   float64 `json:"overhead"`
	Profit     float64 `json:"profit"`
	Total      float64 `json:"total"`
}

// EstimateRange brackets a quick estimate at ±20%.
type EstimateRange struct {
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Average float64 `json:"average"`
}

// QuickEstimate is a preliminary square-footage estimate.
type QuickEstimate struct {
	EstimateID       string         `json:"estimateId"`
	Timestamp        time.Time      `json:"timestamp"`
	SquareFootage    float64        `json:"squareFootage"`
	Tier             string         `json:"tier"`
	TierLabel        string         `json:"tierLabel"`
	BasePricePerSqFt float64        `json:"basePricePerSqFt"`
	Breakdown        QuickBreakdown `json:"breakdown"`
	EstimateRange    EstimateRange  `json:"estimateRange"`
	Options          []string       `json:"options"`
	Disclaimer       string         `json:"disclaimer"`
}

// GenerateQuickEstimate produces a rough tier-scaled estimate from
// square footage alone: labor at 30% of base, each option a flat 10%
// of base, then the usual overhead and profit fractions.
func GenerateQuickEstimate(squareFootage float64, tierName string, options []string) (*QuickEstimate, error) {
	if squareFootage <= 0 {
		return nil, &ValidationError{Code: CodeRequiredFieldMissing, Message: "valid square footage is required"}
	}

	tier := TierByName(tierName)

	baseCost := squareFootage * basePricePerSqFt * tier.Multiplier
	laborCost := baseCost * LaborRate
	optionCost := baseCost * 0.1 * float64(len(options))

	subtotal := baseCost + laborCost + optionCost
	overhead := subtotal * OverheadRate
	profit := subtotal * ProfitRate
	total := subtotal + overhead + profit

	opts := options
	if opts == nil {
		opts = []string{}
	}

	return &QuickEstimate{
		EstimateID:       uuid.NewString(),
		Timestamp:        time.Now().UTC(),
		SquareFootage:    squareFootage,
		Tier:             tier.Name,
		TierLabel:        tier.Label,
		BasePricePerSqFt: basePricePerSqFt,
		Breakdown: QuickBreakdown{
			BaseCost:   baseCost,
			LaborCost:  laborCost,
			OptionCost: optionCost,
			Overhead:   overhead,
			Profit:     profit,
			Total:      total,
		},
		EstimateRange: EstimateRange{
			Low:     total * 0.8,
			High:    total * 1.2,
			Average: total,
		},
		Options:    opts,
		Disclaimer: quickEstimateDisclaimer,
	}, nil
}

// FinancingOption is one amortized payment plan for a financed total.
type FinancingOption struct {
	Months         int     `json:"months"`
	APR            float64 `json:"apr"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayments  float64 `json:"totalPayments"`
	TotalInterest  float64 `json:"totalInterest"`
}

var financingTerms = []struct {
	months int
	apr    float64
}{
	{12, 0.0},
	{24, 0.0599},
	{36, 0.0799},
	{60, 0.0999},
}

// FinancingOptions computes the standard payment plans for a financed
// amount using ordinary monthly amortization.
func FinancingOptions(totalAmount, downPayment float64) []FinancingOption {
	financed := totalAmount - downPayment

	out := make([]FinancingOption, 0, len(financingTerms))
	for _, term := range financingTerms {
		var monthly float64
		if term.apr == 0 {
			monthly = financed / float64(term.months)
		} else {
			rate := term.apr / 12
			growth := math.Pow(1+rate, float64(term.months))
			monthly = financed * (rate * growth) / (growth - 1)
		}

		out = append(out, FinancingOption{
			Months:         term.months,
			APR:            term.apr,
			MonthlyPayment: monthly,
			TotalPayments:  monthly * float64(term.months),
			TotalInterest:  monthly*float64(term.months) - financed,
		})
	}
	return out
}
