package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func singleWindowRequest() EstimateRequest {
	return EstimateRequest{
		Measurements: []Measurement{{Width: 40, Height: 52}},
	}
}

func TestUniversalInches(t *testing.T) {
	nearlyEqual(t, "40x52", UniversalInches(40, 52), 84)
	nearlyEqual(t, "trim floor", UniversalInches(3, 52), 48)
	nearlyEqual(t, "both under trim", UniversalInches(2, 3), 0)
}

func TestCalculateEstimate_SingleWindowDefaults(t *testing.T) {
	est, err := CalculateEstimate(singleWindowRequest(), DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if est.WindowCount != 1 {
		t.Fatalf("windowCount = %d, want 1", est.WindowCount)
	}
	line := est.WindowPricing[0]
	nearlyEqual(t, "universalInches", line.UniversalInches, 84)
	nearlyEqual(t, "basePrice", line.BasePrice, 8400)
	nearlyEqual(t, "materialPrice", line.MaterialPrice, 8400)
	nearlyEqual(t, "laborPrice", line.LaborPrice, 2520)
	nearlyEqual(t, "optionPrice", line.OptionPrice, 0)
	nearlyEqual(t, "totalPrice", line.TotalPrice, 10920)

	b := est.Breakdown
	nearlyEqual(t, "subtotal", b.Subtotal, 10920)
	nearlyEqual(t, "overhead", b.Overhead, 1638)
	nearlyEqual(t, "profit", b.Profit, 2184)
	nearlyEqual(t, "totalBeforeTax", b.TotalBeforeTax, 14742)
	nearlyEqual(t, "finalTotal", b.FinalTotal, 14742)

	if line.WindowID != "window_1" {
		t.Fatalf("windowId = %q, want window_1", line.WindowID)
	}
}

func TestCalculateEstimate_OptionCosts(t *testing.T) {
	table := DefaultTable()
	table.Options = map[string]OptionPricing{
		"gridPattern": {Kind: OptionFixed, Cost: 50},
		"lowECoating": {Kind: OptionPercentage, Percentage: 0.1},
	}

	req := singleWindowRequest()
	req.Options = []string{"gridPattern", "lowECoating", "notConfigured"}

	est, err := CalculateEstimate(req, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := est.WindowPricing[0]
	nearlyEqual(t, "optionPrice", line.OptionPrice, 890) // 50 + 8400*0.1
	nearlyEqual(t, "totalPrice", line.TotalPrice, 11810)
}

func TestCalculateEstimate_MultiplierChain(t *testing.T) {
	table := DefaultTable()
	table.Base = 1.1
	table.Types = map[string]float64{"casement": 1.2}
	table.Brands = map[string]float64{"Andersen": 1.3}
	table.Materials = map[string]float64{"wood": 1.4}

	req := singleWindowRequest()
	req.Selections = Selections{WindowType: "casement", Brand: "Andersen", Material: "wood"}

	est, err := CalculateEstimate(req, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 8400.0 * 1.1 * 1.2 * 1.3 * 1.4
	nearlyEqual(t, "materialPrice", est.WindowPricing[0].MaterialPrice, want)
	nearlyEqual(t, "laborPrice", est.WindowPricing[0].LaborPrice, want*0.3)
}

func TestCalculateEstimate_UnrecognizedSelectionsContributeNothing(t *testing.T) {
	table := DefaultTable()
	table.Types = map[string]float64{"casement": 1.2}

	req := singleWindowRequest()
	req.Selections = Selections{WindowType: "mysteryType", Brand: "NoSuchBrand", Material: "unobtanium"}

	est, err := CalculateEstimate(req, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "materialPrice", est.WindowPricing[0].MaterialPrice, 8400)
}

func TestCalculateEstimate_LineInvariants(t *testing.T) {
	table := DefaultTable()
	table.Base = 1.07
	table.Options = map[string]OptionPricing{
		"argonFill": {Kind: OptionPercentage, Percentage: 0.05},
	}

	req := EstimateRequest{
		Measurements: []Measurement{
			{Width: 36, Height: 48},
			{Width: 28.5, Height: 62.25},
			{Width: 71, Height: 59},
		},
		Options: []string{"argonFill"},
	}

	est, err := CalculateEstimate(req, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range est.WindowPricing {
		nearlyEqual(t, line.WindowID+" total", line.TotalPrice,
			line.MaterialPrice+line.LaborPrice+line.OptionPrice)
		nearlyEqual(t, line.WindowID+" labor", line.LaborPrice, line.MaterialPrice*0.3)
	}

	b := est.Breakdown
	nearlyEqual(t, "overhead fraction", b.Overhead, b.Subtotal*0.15)
	nearlyEqual(t, "profit fraction", b.Profit, b.Subtotal*0.20)
}

func TestCalculateEstimate_DiscountBeforeTax(t *testing.T) {
	req := singleWindowRequest()
	req.Discount = 10
	req.TaxRate = 8

	est, err := CalculateEstimate(req, DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := est.Breakdown
	nearlyEqual(t, "discount", b.Discount, 14742*0.10)
	nearlyEqual(t, "totalAfterDiscount", b.TotalAfterDiscount, 14742*0.90)
	nearlyEqual(t, "tax", b.Tax, 14742*0.90*0.08)
	nearlyEqual(t, "finalTotal", b.FinalTotal, 14742*0.90*1.08)
}

func TestCalculateEstimate_SkipRule(t *testing.T) {
	req := EstimateRequest{
		Measurements: []Measurement{
			{Width: 0, Height: 52},
			{Width: 40, Height: -5},
			{Width: 40, Height: 52},
		},
	}

	est, err := CalculateEstimate(req, DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.WindowCount != 1 {
		t.Fatalf("windowCount = %d, want 1", est.WindowCount)
	}
	// Positional naming counts skipped entries too.
	if got := est.WindowPricing[0].WindowID; got != "window_3" {
		t.Fatalf("windowId = %q, want window_3", got)
	}
}

func TestCalculateEstimate_AllSkippedStillSucceeds(t *testing.T) {
	req := EstimateRequest{
		Measurements: []Measurement{{Width: 0, Height: 0}, {Width: -1, Height: 10}},
	}

	est, err := CalculateEstimate(req, DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.WindowCount != 0 {
		t.Fatalf("windowCount = %d, want 0", est.WindowCount)
	}
	b := est.Breakdown
	for name, v := range map[string]float64{
		"materialCost": b.MaterialCost, "laborCost": b.LaborCost,
		"optionCost": b.OptionCost, "subtotal": b.Subtotal,
		"overhead": b.Overhead, "profit": b.Profit, "finalTotal": b.FinalTotal,
	} {
		nearlyEqual(t, name, v, 0)
	}
}

func TestCalculateEstimate_Validation(t *testing.T) {
	if _, err := CalculateEstimate(EstimateRequest{}, DefaultTable()); err == nil {
		t.Fatal("expected error for nil measurements")
	} else if verr, ok := err.(*ValidationError); !ok || verr.Code != CodeRequiredFieldMissing {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := CalculateEstimate(EstimateRequest{Measurements: []Measurement{}}, DefaultTable()); err == nil {
		t.Fatal("expected error for empty measurements")
	} else if verr, ok := err.(*ValidationError); !ok || verr.Code != CodeValidationFailed {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCalculateEstimate_Idempotent(t *testing.T) {
	table := DefaultTable()
	table.Base = 1.05
	table.Brands = map[string]float64{"Pella": 1.15}

	req := EstimateRequest{
		Measurements: []Measurement{{Width: 40, Height: 52}, {Width: 30, Height: 30}},
		Selections:   Selections{Brand: "Pella"},
		Discount:     5,
		TaxRate:      7.375,
	}

	first, err := CalculateEstimate(req, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculateEstimate(req, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.EstimateID == second.EstimateID {
		t.Fatal("estimateId should be fresh per call")
	}
	if first.Breakdown != second.Breakdown {
		t.Fatalf("breakdowns differ: %+v vs %+v", first.Breakdown, second.Breakdown)
	}
}

func TestCalculateEstimate_BaseUnitPriceOverride(t *testing.T) {
	req := singleWindowRequest()
	req.Selections = Selections{BaseUnitPrice: 120}

	est, err := CalculateEstimate(req, DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "basePrice", est.WindowPricing[0].BasePrice, 84*120)
}
