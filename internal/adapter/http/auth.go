package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"click-logs/internal/core/domain"
)

// tokenKeyword is the Authorization scheme for API tokens.
const tokenKeyword = "Token"

type userKey struct{}

// UserFromContext returns the caller authenticated by requireToken.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(*domain.User)
	return u, ok
}

// requireToken rejects requests without a valid "Authorization: Token
// <token>" header with HTTP 401 before the wrapped handler runs.
func (h *Handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := parseToken(r.Header.Get("Authorization"))
		if !ok {
			w.Header().Set("WWW-Authenticate", tokenKeyword)
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		user, err := h.auth.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}

// parseToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func parseToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, tokenKeyword) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

type loginResponse struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}

// handleLogin exchanges HTTP Basic credentials for an API token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="api"`)
		writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}
	token, expiry, err := h.auth.Login(r.Context(), username, password)
	if errors.Is(err, domain.ErrUnauthorized) {
		w.Header().Set("WWW-Authenticate", `Basic realm="api"`)
		writeDetail(w, http.StatusUnauthorized, "Invalid username/password.")
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.encode(w, http.StatusOK, loginResponse{Token: token, Expiry: expiry})
}
