package handler

import (
	"net/http"

	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

func (h *Handler) calculatePricing(w http.ResponseWriter, r *http.Request) {
	var req pricing.EstimateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	table := h.resolver.Resolve(r.Context())
	estimate, err := pricing.CalculateEstimate(req, table)
	if err != nil {
		respondFromError(w, h.log, "calculatePricing", err)
		return
	}

	estimatesCalculated.Inc()
	h.events.Record(r.Context(), "pricing_calculated", "calculatePricing", map[string]any{
		"estimateId":  estimate.EstimateID,
		"customerId":  estimate.CustomerID,
		"windowCount": estimate.WindowCount,
		"finalTotal":  estimate.Breakdown.FinalTotal,
	})

	respondOK(w, estimate, "Pricing estimate calculated successfully")
}

func (h *Handler) compareTiers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Measurements []pricing.Measurement `json:"measurements"`
		Selections   pricing.Selections    `json:"selections"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	table := h.resolver.Resolve(r.Context())
	result, err := pricing.CompareTiers(req.Measurements, req.Selections, table)
	if err != nil {
		respondFromError(w, h.log, "compareTiers", err)
		return
	}

	tierComparisons.Inc()
	respondOK(w, result, "Pricing tier comparison completed successfully")
}

func (h *Handler) quickEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SquareFootage float64  `json:"squareFootage"`
		Tier          string   `json:"tier"`
		Options       []string `json:"options"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	estimate, err := pricing.GenerateQuickEstimate(req.SquareFootage, req.Tier, req.Options)
	if err != nil {
		respondFromError(w, h.log, "quickEstimate", err)
		return
	}
	respondOK(w, estimate, "Quick estimate generated successfully")
}

func (h *Handler) getMultipliers(w http.ResponseWriter, r *http.Request) {
	table := h.resolver.Resolve(r.Context())
	respondOK(w, table.ForDisplay(), "Pricing multipliers retrieved successfully")
}

func (h *Handler) financingOptions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TotalAmount float64 `json:"totalAmount"`
		DownPayment float64 `json:"downPayment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.TotalAmount <= 0 {
		respondError(w, http.StatusBadRequest, CodeMissingField, "totalAmount must be positive")
		return
	}
	if req.DownPayment < 0 || req.DownPayment >= req.TotalAmount {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, "downPayment must be between 0 and totalAmount")
		return
	}
	respondOK(w, pricing.FinancingOptions(req.TotalAmount, req.DownPayment), "Financing options calculated successfully")
}
