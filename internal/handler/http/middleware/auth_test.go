package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/jwt"
)

func newTestRouter(svc jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group(func(r chi.Router) {
		r.Use(AdminOnly)
		r.Get("/admin", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func doRequest(r *chi.Mux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("test-secret")
	r := newTestRouter(svc)

	token, err := svc.GenerateToken("emp-1", false, time.Hour)
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doRequest(r, "/ping", token).Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/ping", "").Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/ping", "not-a-jwt").Code)
	})

	t.Run("token signed with another key rejected", func(t *testing.T) {
		other, err := jwt.NewJWTService("other-secret").GenerateToken("emp-1", false, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/ping", other).Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired, err := svc.GenerateToken("emp-1", false, -2*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/ping", expired).Code)
	})
}

func TestAdminOnly(t *testing.T) {
	svc := jwt.NewJWTService("test-secret")
	r := newTestRouter(svc)

	admin, err := svc.GenerateToken("emp-1", true, time.Hour)
	require.NoError(t, err)
	regular, err := svc.GenerateToken("emp-2", false, time.Hour)
	require.NoError(t, err)

	t.Run("admin passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doRequest(r, "/admin", admin).Code)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin", regular).Code)
	})
}
