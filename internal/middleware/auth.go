package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dukerupert/vanir/internal/auth"
	"github.com/dukerupert/vanir/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type contextKey string

const (
	// IdentityContextKey is the context key for storing the authenticated identity
	IdentityContextKey contextKey = "identity"
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID pgtype.UUID
	Role   domain.UserRole
}

// WithUser extracts the bearer token and adds the caller's identity to the
// request context. The middleware is optional: requests without a valid
// token continue anonymously and RequireAuth decides what to do about it.
func WithUser(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			identity := &Identity{
				UserID: userID,
				Role:   domain.UserRole(claims.Role),
			}
			ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the caller is authenticated, returning 401 if not
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetIdentity(r.Context()) == nil {
			respondUnauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the caller holds an admin role, returning 403 if not
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentity(r.Context())
		if identity == nil {
			respondUnauthorized(w, r)
			return
		}
		if !identity.Role.IsAdmin() {
			respondForbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin ensures the caller is a super admin, returning 403 if not
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentity(r.Context())
		if identity == nil {
			respondUnauthorized(w, r)
			return
		}
		if identity.Role != domain.RoleSuperAdmin {
			respondForbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetIdentity retrieves the authenticated identity from the request context.
// Returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *Identity {
	identity, ok := ctx.Value(IdentityContextKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}
