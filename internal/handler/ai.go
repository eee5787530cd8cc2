package handler

import (
	"net/http"

	"github.com/goodfaith/exteriors-backend/internal/infra/ai"
)

func (h *Handler) analyzeImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageData  string `json:"imageData"`
		CustomerID string `json:"customerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ImageData == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "imageData is required")
		return
	}

	analysis, err := h.ai.AnalyzeWindowImage(r.Context(), req.ImageData)
	if err != nil {
		aiRequests.WithLabelValues("analyze", "error").Inc()
		h.log.Error("image analysis failed", "err", err)
		respondError(w, http.StatusBadGateway, CodeAIFailed, "image analysis failed")
		return
	}

	aiRequests.WithLabelValues("analyze", "ok").Inc()
	h.events.Record(r.Context(), "ai_analysis_completed", "analyzeImage", map[string]any{
		"customerId":      req.CustomerID,
		"windowsDetected": analysis.WindowsDetected,
		"confidence":      analysis.OverallConfidence,
	})
	respondOK(w, analysis, "Image analysis completed successfully")
}

func (h *Handler) aiChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string        `json:"message"`
		History []ai.ChatTurn `json:"conversationHistory"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, CodeMissingField, "message is required")
		return
	}

	reply, err := h.ai.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		aiRequests.WithLabelValues("chat", "error").Inc()
		h.log.Error("ai chat failed", "err", err)
		respondError(w, http.StatusBadGateway, CodeAIUnavailable, "advisor is unavailable")
		return
	}

	aiRequests.WithLabelValues("chat", "ok").Inc()
	respondOK(w, map[string]string{"reply": reply}, "Chat response generated successfully")
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Analysis    *ai.WindowAnalysis `json:"analysis"`
		Preferences string             `json:"preferences"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Analysis == nil {
		respondError(w, http.StatusBadRequest, CodeMissingField, "analysis is required")
		return
	}

	recs, err := h.ai.RecommendProducts(r.Context(), req.Analysis, req.Preferences)
	if err != nil {
		aiRequests.WithLabelValues("recommend", "error").Inc()
		h.log.Error("recommendations failed", "err", err)
		respondError(w, http.StatusBadGateway, CodeAIFailed, "recommendation generation failed")
		return
	}

	aiRequests.WithLabelValues("recommend", "ok").Inc()
	respondOK(w, map[string]any{"recommendations": recs}, "Recommendations generated successfully")
}
