package pricing

import (
	"sort"
	"testing"
)

func TestCompareTiers_SortedAscending(t *testing.T) {
	measurements := []Measurement{{Width: 40, Height: 52}, {Width: 36, Height: 48}}

	result, err := CompareTiers(measurements, Selections{}, DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Comparisons) != 4 {
		t.Fatalf("comparisons = %d, want 4", len(result.Comparisons))
	}
	if !sort.SliceIsSorted(result.Comparisons, func(i, j int) bool {
		return result.Comparisons[i].TotalPrice < result.Comparisons[j].TotalPrice
	}) {
		t.Fatal("comparisons not sorted ascending by totalPrice")
	}

	wantOrder := []string{"economy", "standard", "premium", "luxury"}
	for i, want := range wantOrder {
		if result.Comparisons[i].Tier != want {
			t.Fatalf("comparison[%d] = %s, want %s", i, result.Comparisons[i].Tier, want)
		}
	}
	if result.WindowCount != 2 {
		t.Fatalf("windowCount = %d, want 2", result.WindowCount)
	}
}

func TestCompareTiers_ScalesBaseUnitPrice(t *testing.T) {
	measurements := []Measurement{{Width: 40, Height: 52}} // 84 UI

	result, err := CompareTiers(measurements, Selections{}, DefaultTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// standard tier: same math as the plain pipeline.
	for _, row := range result.Comparisons {
		wantBase := 84.0 * 100 * row.Multiplier
		wantFinal := wantBase * 1.3 * 1.35 // labor then overhead+profit
		nearlyEqual(t, row.Tier+" totalPrice", row.TotalPrice, wantFinal)
		nearlyEqual(t, row.Tier+" pricePerWindow", row.PricePerWindow, wantFinal)
	}
}

func TestCompareTiers_EmptyMeasurements(t *testing.T) {
	if _, err := CompareTiers(nil, Selections{}, DefaultTable()); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := CompareTiers([]Measurement{}, Selections{}, DefaultTable()); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestTierByName(t *testing.T) {
	if got := TierByName("luxury"); got.Multiplier != 1.6 {
		t.Fatalf("luxury multiplier = %v", got.Multiplier)
	}
	if got := TierByName("nonsense"); got.Name != "standard" {
		t.Fatalf("fallback tier = %s, want standard", got.Name)
	}
}
