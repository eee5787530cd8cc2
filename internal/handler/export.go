package handler

import (
	"fmt"
	"net/http"

	"github.com/goodfaith/exteriors-backend/internal/export"
	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

// exportEstimate returns the posted estimate as an xlsx download
// instead of the usual JSON envelope.
func (h *Handler) exportEstimate(w http.ResponseWriter, r *http.Request) {
	var est pricing.Estimate
	if !decodeBody(w, r, &est) {
		return
	}
	if est.EstimateID == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "estimate is required")
		return
	}

	workbook, err := export.EstimateWorkbook(&est)
	if err != nil {
		respondFromError(w, h.log, "exportEstimate", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="estimate-%s.xlsx"`, est.EstimateID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(workbook)
}
