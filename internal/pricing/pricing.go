package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Fixed cost fractions. Labor is priced against material cost,
// overhead and profit against the job subtotal.
const (
	LaborRate    = 0.3
	OverheadRate = 0.15
	ProfitRate   = 0.20

	// DefaultBaseUnitPrice is the per-Universal-Inch rate used when the
	// caller does not override it.
	DefaultBaseUnitPrice = 100.0
)

// ValidationError is the only error kind the pricing pipeline surfaces
// to callers; everything else degrades silently.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation error codes, matching the API error taxonomy.
const (
	CodeRequiredFieldMissing = "VAL_002"
	CodeValidationFailed     = "VAL_001"
)

// Measurement is one physical window to price. Non-positive dimensions
// mean the window is skipped, not rejected.
type Measurement struct {
	WindowID string  `json:"windowId,omitempty"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Selections are the cross-cutting choices applied to every window in
// one estimate. Unrecognized keys silently contribute no multiplier.
type Selections struct {
	WindowType    string  `json:"windowType,omitempty"`
	Brand         string  `json:"brand,omitempty"`
	Material      string  `json:"material,omitempty"`
	BaseUnitPrice float64 `json:"baseUnitPrice,omitempty"`
}

func (s Selections) unitPrice() float64 {
	if s.BaseUnitPrice > 0 {
		return s.BaseUnitPrice
	}
	return DefaultBaseUnitPrice
}

// EstimateRequest is the full input to the pricing pipeline.
type EstimateRequest struct {
	CustomerID   string        `json:"customerId,omitempty"`
	Measurements []Measurement `json:"measurements"`
	Selections   Selections    `json:"selections"`
	Options      []string      `json:"options,omitempty"`
	Discount     float64       `json:"discount,omitempty"` // percent, 0-100
	TaxRate      float64       `json:"taxRate,omitempty"`  // percent, 0-100
	Notes        string        `json:"notes,omitempty"`
}

// WindowPriceLine is the priced result for one window.
// TotalPrice is always MaterialPrice + LaborPrice + OptionPrice.
type WindowPriceLine struct {
	WindowID        string  `json:"windowId"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	UniversalInches float64 `json:"universalInches"`
	BasePrice       float64 `json:"basePrice"`
	MaterialPrice   float64 `json:"materialPrice"`
	LaborPrice      float64 `json:"laborPrice"`
	OptionPrice     float64 `json:"optionPrice"`
	TotalPrice      float64 `json:"totalPrice"`
}

// Breakdown is the itemized cost record of an estimate, in the order
// the amounts are derived.
type Breakdown struct {
	MaterialCost       float64 `json:"materialCost"`
	LaborCost          float64 `json:"laborCost"`
	OptionCost         float64 `json:"optionCost"`
	Subtotal           float64 `json:"subtotal"`
	Overhead           float64 `json:"overhead"`
	Profit             float64 `json:"profit"`
	TotalBeforeTax     float64 `json:"totalBeforeTax"`
	Discount           float64 `json:"discount"`
	TotalAfterDiscount float64 `json:"totalAfterDiscount"`
	Tax                float64 `json:"tax"`
	FinalTotal         float64 `json:"finalTotal"`
}

// Estimate is the aggregate pricing result. Immutable once returned.
type Estimate struct {
	EstimateID    string            `json:"estimateId"`
	CustomerID    string            `json:"customerId,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
	WindowCount   int               `json:"windowCount"`
	WindowPricing []WindowPriceLine `json:"windowPricing"`
	Breakdown     Breakdown         `json:"breakdown"`
	Selections    Selections        `json:"selections"`
	Options       []string          `json:"options"`
	Notes         string            `json:"notes,omitempty"`
}

// UniversalInches is the trim-adjusted linear-inch metric: two inches
// off each side of both dimensions. This is the sizing quantity the
// whole pricing chain is built on.
func UniversalInches(width, height float64) float64 {
	return math.Max(0, width-4) + math.Max(0, height-4)
}

// priceWindow prices a single measurement against a resolved table.
// Returns ok=false when the window must be skipped.
func priceWindow(m Measurement, idx int, table MultiplierTable, sel Selections, options []string) (WindowPriceLine, bool) {
	if m.Width <= 0 || m.Height <= 0 {
		return WindowPriceLine{}, false
	}

	ui := UniversalInches(m.Width, m.Height)
	basePrice := ui * sel.unitPrice()

	materialPrice := basePrice * table.Base *
		table.typeFactor(sel.WindowType) *
		table.brandFactor(sel.Brand) *
		table.materialFactor(sel.Material)

	laborPrice := materialPrice * LaborRate

	optionPrice := 0.0
	for _, name := range options {
		if o, ok := table.Options[name]; ok {
			optionPrice += o.Amount(materialPrice)
		}
	}

	windowID := m.WindowID
	if windowID == "" {
		windowID = fmt.Sprintf("window_%d", idx+1)
	}

	return WindowPriceLine{
		WindowID:        windowID,
		Width:           m.Width,
		Height:          m.Height,
		UniversalInches: ui,
		BasePrice:       basePrice,
		MaterialPrice:   materialPrice,
		LaborPrice:      laborPrice,
		OptionPrice:     optionPrice,
		TotalPrice:      materialPrice + laborPrice + optionPrice,
	}, true
}

// CalculateEstimate runs the full pipeline against an already-resolved
// multiplier table: price every window, fold the lines, then apply
// overhead, profit, discount and tax in that exact order. Discount is
// taken on the pre-tax total and tax on the post-discount total;
// swapping them changes the final number.
func CalculateEstimate(req EstimateRequest, table MultiplierTable) (*Estimate, error) {
	if req.Measurements == nil {
		return nil, &ValidationError{Code: CodeRequiredFieldMissing, Message: "measurements array is required"}
	}
	if len(req.Measurements) == 0 {
		return nil, &ValidationError{Code: CodeValidationFailed, Message: "at least one measurement is required"}
	}

	lines := make([]WindowPriceLine, 0, len(req.Measurements))
	var materialCost, laborCost, optionCost float64
	for i, m := range req.Measurements {
		line, ok := priceWindow(m, i, table, req.Selections, req.Options)
		if !ok {
			continue
		}
		lines = append(lines, line)
		materialCost += line.MaterialPrice
		laborCost += line.LaborPrice
		optionCost += line.OptionPrice
	}

	subtotal := materialCost + laborCost + optionCost
	overhead := subtotal * OverheadRate
	profit := subtotal * ProfitRate
	totalBeforeTax := subtotal + overhead + profit

	discount := totalBeforeTax * (req.Discount / 100)
	totalAfterDiscount := totalBeforeTax - discount

	tax := totalAfterDiscount * (req.TaxRate / 100)
	finalTotal := totalAfterDiscount + tax

	opts := req.Options
	if opts == nil {
		opts = []string{}
	}

	return &Estimate{
		EstimateID:    uuid.NewString(),
		CustomerID:    req.CustomerID,
		Timestamp:     time.Now().UTC(),
		WindowCount:   len(lines),
		WindowPricing: lines,
		Breakdown: Breakdown{
			MaterialCost:       materialCost,
			LaborCost:          laborCost,
			OptionCost:         optionCost,
			Subtotal:           subtotal,
			Overhead:           overhead,
			Profit:             profit,
			TotalBeforeTax:     totalBeforeTax,
			Discount:           discount,
			TotalAfterDiscount: totalAfterDiscount,
			Tax:                tax,
			FinalTotal:         finalTotal,
		},
		Selections: req.Selections,
		Options:    opts,
		Notes:      req.Notes,
	}, nil
}
