package middleware

import (
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/domain"
)

const (
	msgForbiddenRole = "недостаточно прав для выполнения операции"
	msgNoIdentity    = "отсутствует ID пользователя"
)

// RequireRoles пропускает запрос только если роль из Identity входит в allowed
// Должен стоять после Auth
func RequireRoles(logger Logger, allowed ...domain.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				logger.Warn("RequireRoles - Missing identity: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgNoIdentity)
				return
			}

			if _, ok := allowedSet[identity.Role]; !ok {
				logger.Warn("RequireRoles - Forbidden: user_id=%s, role=%s, path=%s",
					identity.UserID, identity.Role, r.URL.Path)
				handlers.RespondForbidden(w, msgForbiddenRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
