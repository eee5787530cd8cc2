package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goodfaith/exteriors-backend/internal/pricing"
)

// API error codes, grouped by subsystem.
const (
	CodeSystemError   = "SYS_001"
	CodeConfigError   = "SYS_002"
	CodeTimeout       = "SYS_003"
	CodeInvalidInput  = "VAL_001"
	CodeMissingField  = "VAL_002"
	CodeInvalidFormat = "VAL_003"
	CodeNotFound      = "DATA_001"
	CodeDuplicate     = "DATA_002"
	CodeDatabase      = "DATA_003"
	CodeAIUnavailable = "AI_001"
	CodeAIFailed      = "AI_003"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondOK(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Success: false, Error: &apiError{Code: code, Message: message}})
}

// respondFromError maps internal errors onto the envelope. Validation
// errors keep their own code and a 400; everything else is a 500 with
// the detail kept out of the response body.
func respondFromError(w http.ResponseWriter, log *slog.Logger, context string, err error) {
	var verr *pricing.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}
	log.Error("request failed", "context", context, "err", err)
	respondError(w, http.StatusInternalServerError, CodeSystemError, "internal error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidFormat, "invalid JSON body")
		return false
	}
	return true
}
