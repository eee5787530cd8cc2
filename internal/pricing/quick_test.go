package pricing

import "testing"

func TestGenerateQuickEstimate(t *testing.T) {
	est, err := GenerateQuickEstimate(100, "standard", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 100 sqft * $150 = 15000 base; labor 4500; subtotal 19500;
	// overhead 2925; profit 3900; total 26325.
	nearlyEqual(t, "baseCost", est.Breakdown.BaseCost, 15000)
	nearlyEqual(t, "laborCost", est.Breakdown.LaborCost, 4500)
	nearlyEqual(t, "optionCost", est.Breakdown.OptionCost, 0)
	nearlyEqual(t, "overhead", est.Breakdown.Overhead, 2925)
	nearlyEqual(t, "profit", est.Breakdown.Profit, 3900)
	nearlyEqual(t, "total", est.Breakdown.Total, 26325)
	nearlyEqual(t, "range low", est.EstimateRange.Low, 26325*0.8)
	nearlyEqual(t, "range high", est.EstimateRange.High, 26325*1.2)
}

func TestGenerateQuickEstimate_TierAndOptions(t *testing.T) {
	est, err := GenerateQuickEstimate(50, "luxury", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Tier != "luxury" || est.TierLabel != "Luxury" {
		t.Fatalf("tier = %s/%s", est.Tier, est.TierLabel)
	}

	base := 50.0 * 150 * 1.6
	nearlyEqual(t, "baseCost", est.Breakdown.BaseCost, base)
	nearlyEqual(t, "optionCost", est.Breakdown.OptionCost, base*0.2)
}

func TestGenerateQuickEstimate_InvalidFootage(t *testing.T) {
	for _, sqft := range []float64{0, -12} {
		if _, err := GenerateQuickEstimate(sqft, "standard", nil); err == nil {
			t.Fatalf("expected error for squareFootage=%v", sqft)
		}
	}
}

func TestFinancingOptions(t *testing.T) {
	opts := FinancingOptions(12000, 0)
	if len(opts) != 4 {
		t.Fatalf("options = %d, want 4", len(opts))
	}

	// Zero-APR plan is straight division.
	nearlyEqual(t, "12mo monthly", opts[0].MonthlyPayment, 1000)
	nearlyEqual(t, "12mo interest", opts[0].TotalInterest, 0)

	// Interest-bearing plans cost more in total, and longer terms mean
	// smaller monthly payments.
	for i := 1; i < len(opts); i++ {
		if opts[i].TotalInterest <= 0 {
			t.Fatalf("plan %d months: interest = %v", opts[i].Months, opts[i].TotalInterest)
		}
		if opts[i].MonthlyPayment >= opts[i-1].MonthlyPayment {
			t.Fatalf("monthly payment should shrink with term: %v >= %v",
				opts[i].MonthlyPayment, opts[i-1].MonthlyPayment)
		}
	}
}

func TestFinancingOptions_DownPayment(t *testing.T) {
	opts := FinancingOptions(12000, 6000)
	nearlyEqual(t, "12mo monthly", opts[0].MonthlyPayment, 500)
}
