package exit_scan

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	exitScan "github.com/parkwise/PW-BookingService/internal/usecase/exit_scan"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgTokenNotFound      = "токен доступа не найден"
	msgTokenAlreadyUsed   = "токен доступа уже использован"
	msgInvalidState       = "бронирование не активно"
	msgInvalidInput       = "некорректные данные сканирования"
)

type Handler struct {
	useCase ExitScanUseCase
	logger  Logger
}

func NewHandler(useCase ExitScanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/exit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExitScanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/exit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, exitScan.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/exit - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, exitScan.ErrTokenNotFound):
			h.logger.Warn("POST /bookings/exit - Token not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, exitScan.ErrTokenAlreadyUsed):
			h.logger.Warn("POST /bookings/exit - Token already used: booking_id=%s", req.BookingID)
			handlers.RespondConflict(w, msgTokenAlreadyUsed)

		case errors.Is(err, exitScan.ErrInvalidState):
			h.logger.Warn("POST /bookings/exit - Booking not active: booking_id=%s", req.BookingID)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, exitScan.ErrInvalidInput):
			h.logger.Warn("POST /bookings/exit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/exit - Failed to complete booking: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/exit - Booking completed successfully: booking_id=%s, actual_hours=%d, settlement_amount=%.2f",
		result.BookingID, result.ActualHours, result.SettlementAmount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
