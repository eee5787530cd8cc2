package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/goodfaith/exteriors-backend/internal/domain/leads"
)

type leadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Source  string `json:"source"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

type leadResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	SessionID string `json:"sessionId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toLeadResponse(l *leads.Lead) leadResponse {
	return leadResponse{
		ID: l.ID, Name: l.Name, Email: l.Email, Phone: l.Phone,
		Address: l.Address, Source: l.Source, Status: string(l.Status),
		Notes: l.Notes, SessionID: l.SessionID,
		CreatedAt: l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: l.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "name is required")
		return
	}
	if req.Email == "" && req.Phone == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "email or phone is required")
		return
	}

	lead, err := h.leads.Create(r.Context(), leads.Lead{
		Name: req.Name, Email: req.Email, Phone: req.Phone,
		Address: req.Address, Source: req.Source,
		Status: leads.Status(req.Status), Notes: req.Notes,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		respondFromError(w, h.log, "createLead", err)
		return
	}

	leadsCreated.Inc()
	h.events.Record(r.Context(), "lead_created", "createLead", map[string]any{
		"leadId": lead.ID, "source": lead.Source,
	})
	h.notifier.LeadCreated(lead)

	respondOK(w, toLeadResponse(lead), "Lead created successfully")
}

func (h *Handler) getLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, "invalid lead id")
		return
	}

	lead, err := h.leads.Get(r.Context(), id)
	if err != nil {
		respondFromError(w, h.log, "getLead", err)
		return
	}
	if lead == nil {
		respondError(w, http.StatusNotFound, CodeNotFound, "lead not found")
		return
	}
	respondOK(w, toLeadResponse(lead), "Lead retrieved successfully")
}

func (h *Handler) updateLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, CodeInvalidInput, "invalid lead id")
		return
	}

	var req leadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lead, err := h.leads.Update(r.Context(), leads.Lead{
		ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone,
		Address: req.Address, Source: req.Source,
		Status: leads.Status(req.Status), Notes: req.Notes,
	})
	if err != nil {
		respondFromError(w, h.log, "updateLead", err)
		return
	}
	if lead == nil {
		respondError(w, http.StatusNotFound, CodeNotFound, "lead not found")
		return
	}

	h.events.Record(r.Context(), "lead_updated", "updateLead", map[string]any{"leadId": lead.ID})
	respondOK(w, toLeadResponse(lead), "Lead updated successfully")
}

func (h *Handler) searchLeads(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
		Source string `json:"source"`
		Email  string `json:"email"`
		Limit  int    `json:"limit"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	found, err := h.leads.Search(r.Context(), leads.SearchFilter{
		Status: leads.Status(req.Status), Source: req.Source,
		Email: req.Email, Limit: req.Limit,
	})
	if err != nil {
		respondFromError(w, h.log, "searchLeads", err)
		return
	}

	out := make([]leadResponse, 0, len(found))
	for i := range found {
		out = append(out, toLeadResponse(&found[i]))
	}
	respondOK(w, map[string]any{"leads": out, "count": len(out)}, "Leads retrieved successfully")
}
