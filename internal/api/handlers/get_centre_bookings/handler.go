package get_centre_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	"github.com/parkwise/PW-BookingService/internal/service/bookings"
)

const (
	msgInvalidCentreID = "некорректный ID центра"
	msgInvalidQuery    = "некорректные параметры фильтра"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centres/{centreId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centreID := vars["centreId"]
	if centreID == "" {
		h.logger.Warn("GET /centres/{id}/bookings - Empty centre ID")
		handlers.RespondBadRequest(w, msgInvalidCentreID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /centres/{id}/bookings - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ParseQuery(centreID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /centres/{id}/bookings - Invalid query: centre_id=%s, error=%v", centreID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetCentreBookings(r.Context(), serviceReq, identity)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /centres/{id}/bookings - Access denied: centre_id=%s, user_id=%s",
				centreID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /centres/{id}/bookings - Invalid filter: centre_id=%s, error=%v", centreID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /centres/{id}/bookings - Failed to get bookings: centre_id=%s, error=%v",
				centreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centres/{id}/bookings - Bookings retrieved successfully: centre_id=%s, count=%d",
		centreID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
