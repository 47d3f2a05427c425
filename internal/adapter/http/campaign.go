package httpadapter

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// campaignClicksResponse omits the bound keys that were not supplied.
type campaignClicksResponse struct {
	Campaign   int64  `json:"campaign"`
	Clicks     int64  `json:"clicks"`
	AfterDate  string `json:"after_date,omitempty"`
	BeforeDate string `json:"before_date,omitempty"`
}

// handleCampaignClicks counts the clicks of the {campaign} path
// parameter, optionally bounded by the after_date and before_date query
// parameters. The bounds are echoed back verbatim when present. Malformed
// bounds result in HTTP 400 and store failures in HTTP 500.
func (h *Handler) handleCampaignClicks(w http.ResponseWriter, r *http.Request) {
	campaign, err := strconv.ParseInt(chi.URLParam(r, "campaign"), 10, 64)
	if err != nil {
		// out of int64 range; the route pattern already ensures digits
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	q := r.URL.Query()
	afterDate, beforeDate := lastValue(q, "after_date"), lastValue(q, "before_date")

	clicks, err := h.clicks.CountCampaignClicks(r.Context(), campaign, afterDate, beforeDate)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.encode(w, http.StatusOK, campaignClicksResponse{
		Campaign:   campaign,
		Clicks:     clicks,
		AfterDate:  afterDate,
		BeforeDate: beforeDate,
	})
}

// lastValue returns the last value of a repeated query parameter, or ""
// when it is absent.
func lastValue(q url.Values, key string) string {
	vs := q[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}
