package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rohits-web03/chainnotes/internal/logging"
	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/services"
	"github.com/rohits-web03/chainnotes/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// TokenCookie is the cookie set at login; it is accepted when no
// Authorization header is sent.
const TokenCookie = "token"

// Authenticator resolves a bearer token to the caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.UserProfile, error)
}

// UserFromContext returns the caller attached by Auth.
func UserFromContext(ctx context.Context) (models.UserProfile, bool) {
	u, ok := ctx.Value(userKey).(models.UserProfile)
	return u, ok
}

// WithUser attaches the caller's profile to ctx.
func WithUser(ctx context.Context, u models.UserProfile) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if c, err := r.Cookie(TokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// Auth rejects requests without a valid bearer credential: 401 when it is
// missing or its user is gone, 403 when it fails verification.
func Auth(auth Authenticator, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			profile, err := auth.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				var authErr *services.AuthError
				if errors.As(err, &authErr) {
					utils.ErrorResponse(w, authErr.Status, authErr.Message)
					return
				}
				log.Error(r.Context(), "authenticate", "error", err)
				utils.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), *profile)))
		})
	}
}
