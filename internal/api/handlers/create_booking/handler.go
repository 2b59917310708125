package create_booking

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	"github.com/parkwise/PW-BookingService/internal/api/middleware"
	createBooking "github.com/parkwise/PW-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotNotFound        = "парковочный слот не найден"
	msgSlotNotAvailable    = "парковочный слот недоступен"
	msgVehicleNotFound     = "транспортное средство не найдено"
	msgVehicleNotOwned     = "транспортное средство принадлежит другому пользователю"
	msgVehicleTypeMismatch = "тип транспорта не подходит для выбранного слота"
	msgInvalidInput        = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем identity из контекста (через middleware Auth)
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%s, user_id=%s", req.SlotID, identity.UserID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotOwned):
			h.logger.Warn("POST /bookings - Vehicle not owned: vehicle_id=%s, user_id=%s", req.VehicleID, identity.UserID)
			handlers.RespondForbidden(w, msgVehicleNotOwned)

		case errors.Is(err, createBooking.ErrVehicleTypeMismatch):
			h.logger.Warn("POST /bookings - Vehicle type mismatch: slot_id=%s, vehicle_id=%s", req.SlotID, req.VehicleID)
			handlers.RespondBadRequest(w, msgVehicleTypeMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, slot_id=%s, error=%v",
				identity.UserID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, slot_id=%s",
		result.BookingID, identity.UserID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
