package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"click-logs/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the click and auth usecases and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	clicks port.ClickUseCase
	auth   port.AuthUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Everything
// under /clicks requires a valid API token.
func NewHandler(clicks port.ClickUseCase, auth port.AuthUseCase, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{clicks: clicks, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Post("/auth/login/", h.handleLogin)

	r.Route("/clicks", func(r chi.Router) {
		r.Use(h.requireToken)
		r.Post("/", h.handleRecordClick)
		r.Get("/campaign/{campaign:[0-9]+}", h.handleCampaignClicks)
		r.Get("/campaign/{campaign:[0-9]+}/", h.handleCampaignClicks)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not found.")
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
