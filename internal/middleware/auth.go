package middleware

import (
	"context"
	"net/http"
	"strings"

	"stock-backend/internal/auth"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
)

type contextKey string

const UserKey contextKey = "user"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	userRepo   *repositories.UserRepository
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, userRepo *repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		userRepo:   userRepo,
	}
}

// Authenticate validates the bearer token and loads the account from the
// database, so flag changes (is_admin, can_encode, is_active) take effect
// immediately rather than at next token issue.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.resolveUser(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows only administrator accounts through
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.resolveUser(w, r)
		if !ok {
			return
		}
		if !user.IsAdmin {
			http.Error(w, "Administrator access required", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireEncoder allows administrators and accounts with the can_encode flag
func (m *AuthMiddleware) RequireEncoder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := m.resolveUser(w, r)
		if !ok {
			return
		}
		if !auth.CanEncode(user) {
			http.Error(w, "Encoding access required", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) resolveUser(w http.ResponseWriter, r *http.Request) (*models.UserAccount, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		http.Error(w, "Authorization header required", http.StatusUnauthorized)
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
		return nil, false
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return nil, false
	}

	user, err := m.userRepo.Get(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return nil, false
	}

	if !user.IsActive {
		http.Error(w, "Account suspended. Please contact administrator.", http.StatusForbidden)
		return nil, false
	}

	return user, true
}

// GetUserFromContext extracts the authenticated account from the request
// context
func GetUserFromContext(ctx context.Context) (*models.UserAccount, bool) {
	user, ok := ctx.Value(UserKey).(*models.UserAccount)
	return user, ok
}
