package auth_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-api/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserID(r.Context())
		require.True(t, ok)
		email, ok := auth.GetEmail(r.Context())
		require.True(t, ok)
		assert.Equal(t, 42, userID)
		assert.Equal(t, "admin@example.com", email)
		w.WriteHeader(http.StatusOK)
	})
	return auth.Middleware(logger)(next)
}

func TestMiddleware(t *testing.T) {
	handler := protectedHandler(t)

	t.Run("MissingCookieIs401ForAPIClients", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BrowserGetRedirectsToLogin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	})

	t.Run("GarbageTokenIs401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidTokenPassesWithClaimsInContext", func(t *testing.T) {
		token, err := auth.GenerateAccessToken(42, "admin@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
