package list_membership_plans

import (
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/membership-plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPlans(r.Context())
	if err != nil {
		h.logger.Error("GET /membership-plans - Failed to list plans: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /membership-plans - Plans retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
