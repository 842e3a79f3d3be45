package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"clubhub-backend/internal/apperrors"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/utils"
)

// Envelope is the uniform response shape every endpoint returns.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Fields     map[string]bool `json:"fields,omitempty"`
	Pagination *utils.Page     `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

func respondPage(w http.ResponseWriter, data interface{}, page utils.Page) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: &page})
}

// respondError maps an error kind to its HTTP status and renders the
// failure envelope. Conflicts surface as 400 like validation failures.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindConflict:
		status = http.StatusBadRequest
	case apperrors.KindAuth:
		status = http.StatusUnauthorized
	case apperrors.KindForbidden:
		status = http.StatusForbidden
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		logger.Error("internal error", "error", err)
	}
	writeJSON(w, status, Envelope{
		Success: false,
		Message: err.Error(),
		Fields:  apperrors.FieldsOf(err),
	})
}

// decodeBody tolerates an absent body; several endpoints take optional
// payloads (join messages, rejection reasons).
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return apperrors.Validation("invalid request body", nil)
	}
	return nil
}
