package middleware

import (
	"context"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
)

// RoleProvider резолвит роль пользователя по его ID
type RoleProvider interface {
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewAuth создает middleware аутентификации:
// извлекает X-User-ID, резолвит роль и кладет Identity в контекст
func NewAuth(roles RoleProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				logger.Warn("Auth - Missing X-User-ID header: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			role, err := roles.GetRole(r.Context(), userID)
			if err != nil {
				logger.Error("Auth - Failed to resolve role: user_id=%s, error=%v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			identity := domain.Identity{UserID: userID, Role: role}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity извлекает Identity из контекста запроса
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
