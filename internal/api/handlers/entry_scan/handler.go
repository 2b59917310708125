package entry_scan

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	entryScan "github.com/parkwise/PW-BookingService/internal/usecase/entry_scan"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgTokenNotFound      = "токен доступа не найден"
	msgTokenAlreadyUsed   = "токен доступа уже использован"
	msgInvalidState       = "бронирование не ожидает въезда"
	msgInvalidInput       = "некорректные данные сканирования"
)

type Handler struct {
	useCase EntryScanUseCase
	logger  Logger
}

func NewHandler(useCase EntryScanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/entry
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EntryScanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/entry - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, entryScan.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/entry - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, entryScan.ErrTokenNotFound):
			h.logger.Warn("POST /bookings/entry - Token not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, entryScan.ErrTokenAlreadyUsed):
			h.logger.Warn("POST /bookings/entry - Token already used: booking_id=%s", req.BookingID)
			handlers.RespondConflict(w, msgTokenAlreadyUsed)

		case errors.Is(err, entryScan.ErrInvalidState):
			h.logger.Warn("POST /bookings/entry - Booking not awaiting entry: booking_id=%s", req.BookingID)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, entryScan.ErrInvalidInput):
			h.logger.Warn("POST /bookings/entry - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/entry - Failed to activate booking: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/entry - Booking activated successfully: booking_id=%s, slot=%s",
		result.BookingID, result.SlotNumber)
	handlers.RespondJSON(w, http.StatusOK, response)
}
