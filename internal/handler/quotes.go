package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/goodfaith/exteriors-backend/internal/domain/quotes"
	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

type quoteResponse struct {
	QuoteID      string          `json:"quoteId"`
	LeadID       int64           `json:"leadId,omitempty"`
	CustomerName string          `json:"customerName"`
	Estimate     json.RawMessage `json:"estimate"`
	Total        float64         `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"createdAt"`
}

func toQuoteResponse(q *quotes.Quote) quoteResponse {
	return quoteResponse{
		QuoteID: q.QuoteID, LeadID: q.LeadID, CustomerName: q.CustomerName,
		Estimate: json.RawMessage(q.EstimateJSON), Total: q.Total,
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LeadID       int64            `json:"leadId"`
		CustomerName string           `json:"customerName"`
		Estimate     pricing.Estimate `json:"estimate"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "customerName is required")
		return
	}
	if req.Estimate.EstimateID == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "estimate is required")
		return
	}

	payload, err := json.Marshal(req.Estimate)
	if err != nil {
		respondFromError(w, h.log, "createQuote", err)
		return
	}

	quote, err := h.quotes.Create(r.Context(), quotes.Quote{
		QuoteID:      uuid.NewString(),
		LeadID:       req.LeadID,
		CustomerName: req.CustomerName,
		EstimateJSON: payload,
		Total:        req.Estimate.Breakdown.FinalTotal,
	})
	if err != nil {
		respondFromError(w, h.log, "createQuote", err)
		return
	}

	h.events.Record(r.Context(), "quote_created", "createQuote", map[string]any{
		"quoteId": quote.QuoteID, "total": quote.Total,
	})
	h.notifier.QuoteCreated(quote.QuoteID, quote.CustomerName, quote.Total)

	respondOK(w, toQuoteResponse(quote), "Quote created successfully")
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quoteID")

	quote, err := h.quotes.Get(r.Context(), quoteID)
	if err != nil {
		respondFromError(w, h.log, "getQuote", err)
		return
	}
	if quote == nil {
		respondError(w, http.StatusNotFound, CodeNotFound, "quote not found")
		return
	}
	respondOK(w, toQuoteResponse(quote), "Quote retrieved successfully")
}

func (h *Handler) listLeadQuotes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, "invalid lead id")
		return
	}

	found, err := h.quotes.ListByLead(r.Context(), id)
	if err != nil {
		respondFromError(w, h.log, "listLeadQuotes", err)
		return
	}

	out := make([]quoteResponse, 0, len(found))
	for i := range found {
		out = append(out, toQuoteResponse(&found[i]))
	}
	respondOK(w, map[string]any{"quotes": out, "count": len(out)}, "Quotes retrieved successfully")
}

func (h *Handler) updateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quoteID")

	var req struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	next := quotes.Status(req.Status)
	switch next {
	case quotes.StatusSent, quotes.StatusAccepted, quotes.StatusRejected, quotes.StatusExpired:
	default:
		respondError(w, http.StatusBadRequest, CodeInvalidInput, "invalid quote status")
		return
	}

	quote, err := h.quotes.UpdateStatus(r.Context(), quoteID, next)
	if err != nil {
		if errors.Is(err, quotes.ErrInvalidTransition) {
			respondError(w, http.StatusConflict, CodeInvalidInput, err.Error())
			return
		}
		respondFromError(w, h.log, "updateQuoteStatus", err)
		return
	}
	if quote == nil {
		respondError(w, http.StatusNotFound, CodeNotFound, "quote not found")
		return
	}

	h.events.Record(r.Context(), "quote_status_updated", "updateQuoteStatus", map[string]any{
		"quoteId": quote.QuoteID, "status": string(quote.Status),
	})
	respondOK(w, toQuoteResponse(quote), "Quote status updated successfully")
}
