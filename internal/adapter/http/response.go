package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"click-logs/internal/core/domain"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	_ = writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError maps usecase errors to responses. Validation errors are the
// caller's fault and echo their message; anything unexpected is logged
// and hidden behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", tokenKeyword)
		writeDetail(w, http.StatusUnauthorized, "Invalid token.")
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) encode(w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		// encoding should rarely fail; headers are already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
