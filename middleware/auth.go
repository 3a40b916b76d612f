package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"plantnet/models"
	"plantnet/store"
	"plantnet/utils"

	"github.com/dgrijalva/jwt-go"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// extractToken reads the session token from the cookie the /jwt
// endpoint sets, falling back to an Authorization bearer header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware verifies the session token and attaches the caller's
// claims to the request context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := extractToken(r)
		if tokenStr == "" {
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return utils.JwtKey, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerClaims pulls the authenticated caller's claims back out of the
// request context.
func CallerClaims(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// Gate performs role checks against the stored user record. Every gated
// request pays one user lookup; roles are not cached.
type Gate struct {
	Users store.UserStore
}

func (g *Gate) requireRole(next http.Handler, role, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := CallerClaims(r)
		if !ok {
			http.Error(w, "unauthorized access", http.StatusUnauthorized)
			return
		}

		user, err := g.Users.FindByEmail(r.Context(), claims.Email)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, message, http.StatusForbidden)
			return
		}
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		if user.Role != role {
			http.Error(w, message, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the caller's stored role is admin
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return g.requireRole(next, models.RoleAdmin, "Forbidden: Admin only actions!")
}

// RequireSeller ensures the caller's stored role is seller
func (g *Gate) RequireSeller(next http.Handler) http.Handler {
	return g.requireRole(next, models.RoleSeller, "Forbidden: Seller only actions!")
}
