package http

import (
	"context"
	"net/http"
	"strings"

	"campusrent-backend/internal/domain"
	"campusrent-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "user_claims"

// AuthMiddleware validates bearer tokens and stashes the claims in the
// request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token", r.Method, r.URL.Path)
			return
		}
		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token", r.Method, r.URL.Path)
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose session is not an Admin account.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || claims.Category != domain.UserCategoryAdmin {
			respondError(w, http.StatusForbidden, "admin access required", r.Method, r.URL.Path)
			return
		}
		next(w, r)
	}
}

// ClaimsFrom returns the authenticated claims, or nil outside the middleware.
func ClaimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}
