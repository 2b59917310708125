package get_loyalty_points

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	"github.com/parkwise/PW-BookingService/internal/service/loyalty"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service LoyaltyService
	logger  Logger
}

func NewHandler(service LoyaltyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/loyalty-points
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		h.logger.Warn("GET /users/{userId}/loyalty-points - Empty user ID")
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/loyalty-points - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID, identity)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/loyalty-points - Access denied: user_id=%s, requester=%s",
				userID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users/{userId}/loyalty-points - Failed to get balance: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/loyalty-points - Balance retrieved successfully: user_id=%s, points=%d",
		userID, balance.Points)
	handlers.RespondJSON(w, http.StatusOK, balance)
}
