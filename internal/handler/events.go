package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type eventResponse struct {
	ID        int64           `json:"id"`
	EventType string          `json:"eventType"`
	Endpoint  string          `json:"endpoint"`
	UserID    string          `json:"userId"`
	SessionID string          `json:"sessionId"`
	Details   json.RawMessage `json:"details"`
	CreatedAt string          `json:"createdAt"`
}

func (h *Handler) recentEvents(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	found, err := h.events.Recent(r.Context(), limit)
	if err != nil {
		respondFromError(w, h.log, "recentEvents", err)
		return
	}

	out := make([]eventResponse, 0, len(found))
	for _, e := range found {
		out = append(out, eventResponse{
			ID: e.ID, EventType: e.EventType, Endpoint: e.Endpoint,
			UserID: e.UserID, SessionID: e.SessionID,
			Details:   json.RawMessage(e.Details),
			CreatedAt: e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	respondOK(w, map[string]any{"events": out, "count": len(out)}, "Events retrieved successfully")
}
