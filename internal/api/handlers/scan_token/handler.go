package scan_token

import (
	"errors"
	"net/http"

	"github.com/parkwise/PW-BookingService/internal/api/handlers"
	scanToken "github.com/parkwise/PW-BookingService/internal/usecase/scan_token"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTokenNotFound      = "токен доступа не найден"
	msgTokenAlreadyUsed   = "токен доступа уже использован"
	msgInvalidInput       = "некорректные данные сканирования"
)

type Handler struct {
	useCase ScanTokenUseCase
	logger  Logger
}

func NewHandler(useCase ScanTokenUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tokens/scan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScanTokenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tokens/scan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, scanToken.ErrTokenNotFound):
			h.logger.Warn("POST /tokens/scan - Token not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, scanToken.ErrTokenAlreadyUsed):
			h.logger.Warn("POST /tokens/scan - Token already used: booking_id=%s", req.BookingID)
			handlers.RespondConflict(w, msgTokenAlreadyUsed)

		case errors.Is(err, scanToken.ErrInvalidInput):
			h.logger.Warn("POST /tokens/scan - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tokens/scan - Failed to validate token: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /tokens/scan - Token validated successfully: booking_id=%s, status=%s",
		result.BookingID, result.BookingStatus)
	handlers.RespondJSON(w, http.StatusOK, response)
}
