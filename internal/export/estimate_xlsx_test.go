package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

func TestEstimateWorkbook(t *testing.T) {
	est, err := pricing.CalculateEstimate(pricing.EstimateRequest{
		Measurements: []pricing.Measurement{
			{WindowID: "kitchen", Width: 40, Height: 52},
			{Width: 36, Height: 48},
		},
	}, pricing.DefaultTable())
	require.NoError(t, err)

	data, err := EstimateWorkbook(est)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.ElementsMatch(t, []string{"Summary", "Windows"}, f.GetSheetList())

	id, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	require.Equal(t, est.EstimateID, id)

	final, err := f.GetCellValue("Summary", "B15")
	require.NoError(t, err)
	require.Equal(t, pricing.FormatPrice(est.Breakdown.FinalTotal, true), final)

	window, err := f.GetCellValue("Windows", "A2")
	require.NoError(t, err)
	require.Equal(t, "kitchen", window)

	rows, err := f.GetRows("Windows")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two windows
}
