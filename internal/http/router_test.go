package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-admin-gateway/internal/clients"
	"github.com/pribylovaa/go-admin-gateway/internal/config"
	"github.com/pribylovaa/go-admin-gateway/internal/models"
	"github.com/pribylovaa/go-admin-gateway/internal/session"
)

// Сквозные проверки сборки роутера: маршруты попадают в нужные группы
// и каждый гейт срабатывает там, где должен.

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("router-test-secret"))
	require.NoError(t, err)

	return raw
}

func adminSession(t *testing.T) *models.Session {
	t.Helper()

	return &models.Session{
		User: models.User{
			ID:              uuid.New(),
			Name:            "Operator",
			Email:           "op@example.com",
			IsEmailVerified: true,
			Roles:           []string{models.RoleAdmin},
		},
		AccessToken:  mintToken(t, time.Now().Add(time.Hour)),
		RefreshToken: "refresh",
	}
}

func newTestRouter(t *testing.T, upstream *httptest.Server, s *models.Session) (http.Handler, *session.Store) {
	t.Helper()

	ctx := context.Background()
	p := session.NewMemoryPersistence()
	if s != nil {
		require.NoError(t, p.Save(ctx, s))
	}

	store, err := session.NewStore(ctx, p)
	require.NoError(t, err)

	cfg := config.Config{
		Upstream: config.UpstreamConfig{
			AuthURL: upstream.URL + "/auth",
			NewsURL: upstream.URL,
		},
		Timeouts: config.TimeoutConfig{Upstream: 2 * time.Second},
	}

	cl, err := clients.New(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cl.Close() })

	return NewRouter(cl, store, Options{Logger: slog.New(slog.DiscardHandler)}), store
}

func TestRouter_ProtectedRouteWithoutSession_RedirectsToLogin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer srv.Close()

	router, _ := newTestRouter(t, srv, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news?page=2", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login?from=%2Fnews%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestRouter_PublicOnlyWithSession_RedirectsHome(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer srv.Close()

	router, _ := newTestRouter(t, srv, adminSession(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRouter_ExpiredToken_LogsOutAndRedirects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer srv.Close()

	s := adminSession(t)
	s.AccessToken = mintToken(t, time.Now().Add(-time.Hour))

	router, store := newTestRouter(t, srv, s)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login?from=%2Fprofile", rec.Header().Get("Location"))
	require.Nil(t, store.Current())
}

func TestRouter_NonAdmin_RedirectsUnauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("upstream must not be called")
	}))
	defer srv.Close()

	s := adminSession(t)
	s.User.Roles = []string{"customer"}

	router, _ := newTestRouter(t, srv, s)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/unauthorized", rec.Header().Get("Location"))
}

func TestRouter_UnverifiedOperator_CanVerifyButNotBrowse(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify-email", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"user": map[string]any{
				"id":              id.String(),
				"name":            "Operator",
				"email":           "op@example.com",
				"isEmailVerified": true,
				"roles":           []string{"admin"},
			},
			"accessToken":  mintToken(t, time.Now().Add(time.Hour)),
			"refreshToken": "refresh-2",
		}})
	}))
	defer srv.Close()

	s := adminSession(t)
	s.User.ID = id
	s.User.IsEmailVerified = false

	router, store := newTestRouter(t, srv, s)

	// Дашборд закрыт до подтверждения.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/verify-email?from=%2Fnews", rec.Header().Get("Location"))

	// Сам verify-email при этом проходит (гейт без требований).
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/verify-email",
		strings.NewReader(`{"code":"123456"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, store.Current().User.IsEmailVerified)
}

func TestRouter_HappyPath_ProxiesNewsWithBearer(t *testing.T) {
	t.Parallel()

	var seenAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/news", r.URL.Path)
		seenAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	}))
	defer srv.Close()

	s := adminSession(t)
	router, _ := newTestRouter(t, srv, s)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Bearer "+s.AccessToken, seenAuth)
}

