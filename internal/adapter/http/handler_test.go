package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "0b7e8f3c-8c43-4d2a-9d44-7a1f0a3c2f10"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupHandler(t *testing.T) (*Handler, *mocks.MockClickUseCase, *mocks.MockAuthUseCase) {
	clicks := mocks.NewMockClickUseCase(t)
	auth := mocks.NewMockAuthUseCase(t)
	return NewHandler(clicks, auth, discardLogger()), clicks, auth
}

func allowToken(auth *mocks.MockAuthUseCase) {
	auth.EXPECT().
		Authenticate(mock.Anything, testToken).
		Return(&domain.User{ID: uuid.New(), Username: "user"}, nil)
}

func do(h *Handler, method, target string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	return rr
}

func withToken() http.Header {
	return http.Header{"Authorization": {"Token " + testToken}}
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	return out
}

func TestCampaignClicksRequiresToken(t *testing.T) {
	h, _, _ := setupHandler(t)

	for _, header := range []http.Header{
		nil,
		{"Authorization": {"Bearer " + testToken}},
		{"Authorization": {"Token"}},
		{"Authorization": {"Token a b"}},
	} {
		rr := do(h, http.MethodGet, "/clicks/campaign/4510461/", nil, header)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Token", rr.Header().Get("WWW-Authenticate"))
	}
}

func TestCampaignClicksInvalidToken(t *testing.T) {
	h, _, auth := setupHandler(t)
	auth.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domain.ErrUnauthorized)

	rr := do(h, http.MethodGet, "/clicks/campaign/4510461/", nil, http.Header{"Authorization": {"token stale"}})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid token.", decode(t, rr)["detail"])
}

func TestCampaignClicksPassesRawBounds(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	allowToken(auth)
	clicks.EXPECT().
		CountCampaignClicks(mock.Anything, int64(4510461), "2021-11-07 03:10:00", "").
		Return(int64(5), nil)

	rr := do(h, http.MethodGet, "/clicks/campaign/4510461/?after_date=2021-11-07+03:10:00", nil, withToken())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"campaign":   float64(4510461),
		"clicks":     float64(5),
		"after_date": "2021-11-07 03:10:00",
	}, decode(t, rr))
}

func TestCampaignClicksRepeatedBoundUsesLast(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	allowToken(auth)
	clicks.EXPECT().
		CountCampaignClicks(mock.Anything, int64(1), "2021-11-07 03:20:00", "").
		Return(int64(2), nil)

	rr := do(h, http.MethodGet,
		"/clicks/campaign/1/?after_date=2021-11-07+03:10:00&after_date=2021-11-07+03:20:00", nil, withToken())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2021-11-07 03:20:00", decode(t, rr)["after_date"])
}

func TestCampaignClicksWithoutTrailingSlash(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	allowToken(auth)
	clicks.EXPECT().CountCampaignClicks(mock.Anything, int64(0), "", "").Return(int64(0), nil)

	rr := do(h, http.MethodGet, "/clicks/campaign/0", nil, withToken())
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"campaign": float64(0), "clicks": float64(0)}, decode(t, rr))
}

func TestCampaignClicksValidationError(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	allowToken(auth)
	clicks.EXPECT().
		CountCampaignClicks(mock.Anything, int64(1), "2022-12", "").
		Return(int64(0), &domain.ValidationError{Field: "after_date", Value: "2022-12", Err: errors.New("bad format")})

	rr := do(h, http.MethodGet, "/clicks/campaign/1/?after_date=2022-12", nil, withToken())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "after_date: bad format", body["detail"])
	assert.NotContains(t, body, "clicks")
}

func TestCampaignClicksStoreError(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	allowToken(auth)
	clicks.EXPECT().
		CountCampaignClicks(mock.Anything, int64(1), "", "").
		Return(int64(0), errors.New("connection refused"))

	rr := do(h, http.MethodGet, "/clicks/campaign/1/", nil, withToken())
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal error", decode(t, rr)["detail"])
}

func TestCampaignClicksNonIntegerCampaign(t *testing.T) {
	h, _, auth := setupHandler(t)
	auth.EXPECT().Authenticate(mock.Anything, testToken).Return(&domain.User{}, nil).Times(3)

	for _, target := range []string{
		"/clicks/campaign/abc/",
		"/clicks/campaign/-1/",
		"/clicks/campaign/99999999999999999999/",
	} {
		rr := do(h, http.MethodGet, target, nil, withToken())
		assert.Equal(t, http.StatusNotFound, rr.Code, target)
	}
}

func TestRecordClick(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	allowToken(auth)
	ts := time.Date(2021, 11, 7, 3, 10, 34, 0, time.UTC)

	clicks.EXPECT().Location().Return(time.UTC)
	clicks.EXPECT().
		RecordClick(mock.Anything, int64(4510461), ts).
		Return(&domain.Click{ID: 1, Campaign: 4510461, Timestamp: ts}, nil)

	body := strings.NewReader(`{"campaign": 4510461, "timestamp": "2021-11-07 03:10:34"}`)
	rr := do(h, http.MethodPost, "/clicks/", body, withToken())
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, map[string]any{
		"campaign":  float64(4510461),
		"timestamp": "2021-11-07 03:10:34",
	}, decode(t, rr))
}

func TestRecordClickBadInput(t *testing.T) {
	h, clicks, auth := setupHandler(t)
	auth.EXPECT().Authenticate(mock.Anything, testToken).Return(&domain.User{}, nil).Times(3)
	clicks.EXPECT().Location().Return(time.UTC).Once()

	rr := do(h, http.MethodPost, "/clicks/", strings.NewReader("{"), withToken())
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(h, http.MethodPost, "/clicks/", strings.NewReader(`{"timestamp": "2021-11-07 03:10:34"}`), withToken())
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(h, http.MethodPost, "/clicks/", strings.NewReader(`{"campaign": 1, "timestamp": "2021-13-07 03:10:34"}`), withToken())
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode(t, rr)["detail"], "timestamp")
}

func TestLogin(t *testing.T) {
	h, _, auth := setupHandler(t)
	expiry := time.Date(2021, 11, 7, 13, 0, 0, 0, time.UTC)
	auth.EXPECT().Login(mock.Anything, "user", "pass").Return(testToken, expiry, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login/", nil)
	req.SetBasicAuth("user", "pass")
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp loginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, testToken, resp.Token)
	assert.True(t, expiry.Equal(resp.Expiry))
}

func TestLoginRejected(t *testing.T) {
	h, _, auth := setupHandler(t)
	auth.EXPECT().Login(mock.Anything, "user", "wrong").Return("", time.Time{}, domain.ErrUnauthorized)

	rr := do(h, http.MethodPost, "/auth/login/", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/login/", bytes.NewReader(nil))
	req.SetBasicAuth("user", "wrong")
	rr = httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid username/password.", decode(t, rr)["detail"])
}

func TestHealth(t *testing.T) {
	h, _, _ := setupHandler(t)
	rr := do(h, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestParseToken(t *testing.T) {
	cases := map[string]struct {
		token string
		ok    bool
	}{
		"Token abc":     {"abc", true},
		"token abc":     {"abc", true},
		"  Token  abc ": {"abc", true},
		"Bearer abc":    {"", false},
		"Token":         {"", false},
		"Token ":        {"", false},
		"":              {"", false},
	}
	for in, want := range cases {
		token, ok := parseToken(in)
		assert.Equal(t, want.ok, ok, in)
		assert.Equal(t, want.token, token, in)
	}
}
