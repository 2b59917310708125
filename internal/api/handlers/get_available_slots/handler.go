package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/domain"
	getAvailableSlots "github.com/parkwise/PW-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCentreID    = "некорректный ID центра"
	msgInvalidVehicleType = "некорректный тип транспорта"
	msgCentreNotFound     = "парковочный центр не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/centres/{centreId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	centreID := vars["centreId"]
	if centreID == "" {
		h.logger.Warn("GET /centres/{id}/available-slots - Empty centre ID")
		handlers.RespondBadRequest(w, msgInvalidCentreID)
		return
	}

	// Получаем vehicleType из query параметров (опционально)
	var vehicleTypePtr *domain.VehicleType
	if vt := r.URL.Query().Get("vehicleType"); vt != "" {
		vehicleType := domain.VehicleType(vt)
		vehicleTypePtr = &vehicleType
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		CentreID:    centreID,
		VehicleType: vehicleTypePtr,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCentreNotFound):
			h.logger.Warn("GET /centres/{id}/available-slots - Centre not found: centre_id=%s", centreID)
			handlers.RespondNotFound(w, msgCentreNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /centres/{id}/available-slots - Invalid input: centre_id=%s, error=%v", centreID, err)
			handlers.RespondBadRequest(w, msgInvalidVehicleType)

		default:
			h.logger.Error("GET /centres/{id}/available-slots - Failed to get slots: centre_id=%s, error=%v",
				centreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /centres/{id}/available-slots - Slots retrieved successfully: centre_id=%s, count=%d",
		centreID, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
