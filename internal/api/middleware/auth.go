package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/jwt"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userRoleKey contextKey = "user_role"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "токен недействителен или истек"
	msgForbidden    = "доступ запрещен"
)

// TokenParser проверяет access-токен
type TokenParser interface {
	ParseAccessToken(token string) (*jwt.Claims, error)
}

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладет ID и роль пользователя в контекст
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				writeError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			claims, err := parser.ParseAccessToken(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, userRoleKey, domain.Role(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles пропускает только пользователей с одной из ролей
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeError(w, http.StatusForbidden, msgForbidden)
		})
	}
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, userID int64, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
