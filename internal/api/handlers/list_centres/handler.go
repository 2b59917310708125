package list_centres

import (
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/centres
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем city из query параметров (опционально)
	city := r.URL.Query().Get("city")
	var cityPtr *string
	if city != "" {
		cityPtr = &city
	}

	result, err := h.service.List(r.Context(), cityPtr)
	if err != nil {
		h.logger.Error("GET /centres - Failed to list centres: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /centres - Centres retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
