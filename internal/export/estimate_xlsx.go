package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

// EstimateWorkbook renders one estimate as an xlsx workbook: a summary
// sheet with the full breakdown and a per-window detail sheet.
func EstimateWorkbook(est *pricing.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const summary = "Summary"
	const windows = "Windows"

	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(windows); err != nil {
		return nil, err
	}

	setRow := func(sheet string, row int, values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, cell, &values)
	}

	rows := [][]any{
		{"Estimate", est.EstimateID},
		{"Date", est.Timestamp.Format("2006-01-02")},
		{"Windows", est.WindowCount},
		{},
		{"Material cost", pricing.FormatPrice(est.Breakdown.MaterialCost, true)},
		{"Labor cost", pricing.FormatPrice(est.Breakdown.LaborCost, true)},
		{"Options", pricing.FormatPrice(est.Breakdown.OptionCost, true)},
		{"Subtotal", pricing.FormatPrice(est.Breakdown.Subtotal, true)},
		{"Overhead (15%)", pricing.FormatPrice(est.Breakdown.Overhead, true)},
		{"Profit (20%)", pricing.FormatPrice(est.Breakdown.Profit, true)},
		{"Total before tax", pricing.FormatPrice(est.Breakdown.TotalBeforeTax, true)},
		{"Discount", pricing.FormatPrice(est.Breakdown.Discount, true)},
		{"Total after discount", pricing.FormatPrice(est.Breakdown.TotalAfterDiscount, true)},
		{"Tax", pricing.FormatPrice(est.Breakdown.Tax, true)},
		{"Final total", pricing.FormatPrice(est.Breakdown.FinalTotal, true)},
	}
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		if err := setRow(summary, i+1, r...); err != nil {
			return nil, fmt.Errorf("summary row %d: %w", i+1, err)
		}
	}

	header := []any{"Window", "Width", "Height", "Universal Inches", "Base", "Material", "Labor", "Options", "Total"}
	if err := setRow(windows, 1, header...); err != nil {
		return nil, err
	}
	for i, line := range est.WindowPricing {
		row := []any{
			line.WindowID, line.Width, line.Height, line.UniversalInches,
			line.BasePrice, line.MaterialPrice, line.LaborPrice, line.OptionPrice, line.TotalPrice,
		}
		if err := setRow(windows, i+2, row...); err != nil {
			return nil, fmt.Errorf("window row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
