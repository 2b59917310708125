package scan_token

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/PW-BookingService/internal/domain"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
	tokenRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/token"
	"github.com/parkwise/PW-BookingService/pkg/qrtoken"
)

// UseCase use case проверки токена доступа
// Валидатор только читает состояние: токен гасится при выезде, поэтому
// сканирование не должно блокировать последующий въезд или выезд
type UseCase struct {
	tokenRepo   TokenRepository
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tokenRepo TokenRepository,
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tokenRepo:   tokenRepo,
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// Execute проверяет токен доступа и возвращает контекст бронирования
// ErrTokenAlreadyUsed возвращается только для погашенного токена
// завершенного бронирования - для живого бронирования погашенный токен
// показывается как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем входные данные (QR или пара bookingID+tokenCode)
	bookingID, code, err := resolveCredentials(req)
	if err != nil {
		uc.logger.Warn("ScanToken: failed to resolve credentials: %v", err)
		return nil, err
	}

	uc.logger.Info("ScanToken: booking=%s", bookingID)

	// 2. Поиск токена по точному совпадению кода и бронирования
	token, err := uc.tokenRepo.GetByCode(ctx, bookingID, code)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			uc.logger.Warn("ScanToken: token not found for booking id=%s", bookingID)
			return nil, ErrTokenNotFound
		}
		uc.logger.Error("ScanToken: failed to get token for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrTokenNotFound
		}
		uc.logger.Error("ScanToken: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Погашенный токен завершенного бронирования повторно не принимается
	if token.IsUsed && booking.Status == domain.StatusCompleted {
		uc.logger.Warn("ScanToken: token for completed booking id=%s already used", bookingID)
		return nil, ErrTokenAlreadyUsed
	}

	location, err := uc.slotRepo.GetLocation(ctx, booking.SlotID)
	if err != nil {
		uc.logger.Error("ScanToken: failed to get slot location id=%s: %v", booking.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot location: %v", ErrInternal, err)
	}

	uc.logger.Info("ScanToken: token for booking id=%s validated, status=%s", bookingID, booking.Status)

	return &Response{
		TokenCode:     token.TokenCode,
		BookingID:     booking.ID,
		BookingStatus: string(booking.Status),
		IsUsed:        token.IsUsed,
		UsedAt:        token.UsedAt,
		SlotNumber:    location.SlotNumber,
		ZoneName:      location.ZoneName,
		CentreName:    location.CentreName,
	}, nil
}

// resolveCredentials извлекает пару bookingID+tokenCode из запроса
func resolveCredentials(req *Request) (string, string, error) {
	if req.QRData != "" {
		payload, err := qrtoken.Decode(req.QRData)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return payload.BookingID, payload.TokenCode, nil
	}

	if req.BookingID == "" || req.TokenCode == "" {
		return "", "", fmt.Errorf("%w: qrData or bookingID+tokenCode required", ErrInvalidInput)
	}

	return req.BookingID, req.TokenCode, nil
}
