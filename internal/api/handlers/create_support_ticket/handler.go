package create_support_ticket

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	"github.com/parkwise/PW-BookingService/internal/service/support"
	"github.com/parkwise/PW-BookingService/internal/service/support/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные тикета"
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

// Handle POST /api/v1/support/tickets
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support/tickets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /support/tickets - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.CreateTicket(r.Context(), &models.CreateTicketRequest{
		UserID:      identity.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, support.ErrInvalidInput):
			h.logger.Warn("POST /support/tickets - Invalid input: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /support/tickets - Failed to create ticket: user_id=%s, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /support/tickets - Ticket created successfully: ticket_id=%s, user_id=%s",
		result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
