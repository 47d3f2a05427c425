package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"click-logs/internal/core/domain"
)

type recordClickRequest struct {
	Campaign  *int64 `json:"campaign"`
	Timestamp string `json:"timestamp"`
}

type clickResponse struct {
	Campaign  int64  `json:"campaign"`
	Timestamp string `json:"timestamp"`
}

// handleRecordClick stores a single click. The body carries a campaign
// and an optional timestamp in the bound format; a missing timestamp
// means now. Invalid bodies result in HTTP 400.
func (h *Handler) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	var req recordClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Campaign == nil {
		writeDetail(w, http.StatusBadRequest, "campaign: this field is required")
		return
	}

	loc := h.clicks.Location()
	var ts time.Time
	if req.Timestamp != "" {
		var err error
		ts, err = domain.ParseBound(req.Timestamp, loc)
		if err != nil {
			h.writeError(w, r, &domain.ValidationError{Field: "timestamp", Value: req.Timestamp, Err: err})
			return
		}
	}

	click, err := h.clicks.RecordClick(r.Context(), *req.Campaign, ts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.encode(w, http.StatusCreated, clickResponse{
		Campaign:  click.Campaign,
		Timestamp: domain.FormatBound(click.Timestamp, loc),
	})
}
