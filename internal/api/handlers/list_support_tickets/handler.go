package list_support_tickets

import (
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
)

type Handler struct {
	service SupportService
	logger  Logger
}

func NewHandler(service SupportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/support/tickets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /support/tickets - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListTickets(r.Context(), identity)
	if err != nil {
		h.logger.Error("GET /support/tickets - Failed to list tickets: user_id=%s, error=%v",
			identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /support/tickets - Tickets retrieved successfully: user_id=%s, count=%d",
		identity.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
