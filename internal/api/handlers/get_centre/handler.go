package get_centre

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/service/centres"
)

const (
	msgInvalidCentreID = "некорректный ID центра"
	msgNotFound        = "парковочный центр не найден"
)

type Handler struct {
	service CentreService
	logger  Logger
}

func NewHandler(service CentreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centres/{centreId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centreID := vars["centreId"]
	if centreID == "" {
		h.logger.Warn("GET /centres/{id} - Empty centre ID")
		handlers.RespondBadRequest(w, msgInvalidCentreID)
		return
	}

	centre, err := h.service.GetByID(r.Context(), centreID)
	if err != nil {
		switch {
		case errors.Is(err, centres.ErrCentreNotFound):
			h.logger.Warn("GET /centres/{id} - Centre not found: centre_id=%s", centreID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /centres/{id} - Failed to get centre: centre_id=%s, error=%v", centreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centres/{id} - Centre retrieved successfully: centre_id=%s", centreID)
	handlers.RespondJSON(w, http.StatusOK, centre)
}
