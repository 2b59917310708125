package subscribe_membership

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	"github.com/parkwise/PW-BookingService/internal/service/memberships"
	"github.com/parkwise/PW-BookingService/internal/service/memberships/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPlanNotFound       = "тарифный план не найден"
	msgAlreadySubscribed  = "у пользователя уже есть активная подписка"
	msgInvalidInput       = "некорректные параметры подписки"
)

type Handler struct {
	service MembershipService
	logger  Logger
}

func NewHandler(service MembershipService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/memberships/subscribe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubscribeMembershipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /memberships/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /memberships/subscribe - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Subscribe(r.Context(), &models.SubscribeRequest{
		UserID:        identity.UserID,
		PlanID:        req.PlanID,
		BillingPeriod: req.BillingPeriod,
	})
	if err != nil {
		switch {
		case errors.Is(err, memberships.ErrPlanNotFound):
			h.logger.Warn("POST /memberships/subscribe - Plan not found: plan_id=%s", req.PlanID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, memberships.ErrAlreadySubscribed):
			h.logger.Warn("POST /memberships/subscribe - Already subscribed: user_id=%s", identity.UserID)
			handlers.RespondConflict(w, msgAlreadySubscribed)

		case errors.Is(err, memberships.ErrInvalidInput):
			h.logger.Warn("POST /memberships/subscribe - Invalid input: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /memberships/subscribe - Failed to subscribe: user_id=%s, plan_id=%s, error=%v",
				identity.UserID, req.PlanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /memberships/subscribe - Subscription created successfully: user_id=%s, plan=%s",
		identity.UserID, result.PlanName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
