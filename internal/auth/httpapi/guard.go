package httpapi

import (
	"context"
	"net/http"
	"strings"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/usecases"
	"atlas-cms/internal/infra/httpserver"
)

const (
	missingTokenErrMessage   = "missing or malformed authorization header"
	invalidSessionErrMessage = "invalid or expired session"
	adminRequiredErrMessage  = "admin role required"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext returns the session the guard attached to the request.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(domain.Session)
	return session, ok
}

func NewSessionGuard(sessions usecases.SessionService) *SessionGuard {
	return &SessionGuard{
		sessions: sessions,
	}
}

var _ httpserver.Guard = &SessionGuard{}

// SessionGuard authenticates requests with a bearer token and hangs the
// verified session on the request context.
type SessionGuard struct {
	sessions usecases.SessionService
}

func (g *SessionGuard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingTokenErrMessage)
			return
		}

		session, err := g.sessions.Verify(r.Context(), token)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, invalidSessionErrMessage)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *SessionGuard) RequireAdmin(next http.Handler) http.Handler {
	return g.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok || !session.IsAdmin() {
			httpserver.ReplyWithError(w, http.StatusForbidden, adminRequiredErrMessage)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
