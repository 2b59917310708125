package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	"github.com/parkwise/PW-BookingService/internal/service/vehicles"
	"github.com/parkwise/PW-BookingService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgDuplicateNumber    = "транспортное средство с таким номером уже зарегистрировано"
	msgInvalidInput       = "некорректные данные транспортного средства"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /vehicles - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateVehicleRequest{
		UserID:        identity.UserID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		VehicleModel:  req.VehicleModel,
		VehicleColor:  req.VehicleColor,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrDuplicateNumber):
			h.logger.Warn("POST /vehicles - Duplicate vehicle number: number=%s", req.VehicleNumber)
			handlers.RespondConflict(w, msgDuplicateNumber)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: user_id=%s, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%s, user_id=%s",
		result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
