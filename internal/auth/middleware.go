package auth

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"portfolio-api/internal/httputil"
)

type contextKey string

const (
	// UserIDKey is the context key for the authenticated user id
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for the authenticated email
	EmailKey contextKey = "email"
)

// Middleware validates the JWT cookie and adds claims to the request context.
// A browser asking for HTML (the GraphiQL explorer) is redirected to the login
// flow; API clients get a plain 401.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				logger.Warn("no auth cookie found", "path", r.URL.Path)
				unauthorized(w, r)
				return
			}

			claims, err := ValidateAccessToken(cookie.Value)
			if err != nil {
				logger.Warn("invalid token", "error", err)
				unauthorized(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, EmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}
	httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
}

// GetUserID extracts the user id from context
func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetEmail extracts the email from context
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// SetAuthCookie sets the access token in a secure HttpOnly cookie
func SetAuthCookie(w http.ResponseWriter, token string) {
	sameSite := http.SameSiteStrictMode
	env := os.Getenv("ENV")
	if env == "development" || env == "local" {
		sameSite = http.SameSiteLaxMode // Allow testing from Postman
	}

	secure := env == "production" || env == "prod"

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/",
		MaxAge:   900, // 15 minutes
	})
}

// ClearAuthCookie removes the auth cookie
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		HttpOnly: true,
		Secure:   os.Getenv("ENV") != "local",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
