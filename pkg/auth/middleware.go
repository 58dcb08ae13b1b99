package auth

import (
	"context"
	"net/http"

	"github.com/mkorsun/storefront/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sid"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (int, bool)
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int) bool
}

// SessionMiddleware resolves the sid cookie and puts the user id on the
// request context. Requests without a valid session get 401.
func SessionMiddleware(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := resolveSession(r, sessions)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware gates the admin routes. Missing session and non-admin
// user both answer 403, matching the panel's historical behavior.
func AdminMiddleware(sessions SessionResolver, users AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := resolveSession(r, sessions)
			if !ok || !users.IsAdmin(r.Context(), userID) {
				utils.RespondWithError(w, http.StatusForbidden, "admin only")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(r *http.Request, sessions SessionResolver) (int, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	return sessions.Resolve(r.Context(), cookie.Value)
}
