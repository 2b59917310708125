package entry_scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/slot"
	tokenRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/token"
	"github.com/parkwise/PW-BookingService/pkg/qrtoken"
)

// UseCase use case активации бронирования при въезде на парковку
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	tokenRepo    TokenRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	tokenRepo TokenRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		tokenRepo:    tokenRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет активацию бронирования по отсканированному токену
// Переход pending -> active и занятие слота выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем входные данные (QR или пара bookingID+tokenCode)
	bookingID, code, err := resolveCredentials(req)
	if err != nil {
		uc.logger.Warn("EntryScan: failed to resolve credentials: %v", err)
		return nil, err
	}

	uc.logger.Info("EntryScan: booking=%s", bookingID)

	now := uc.timeProvider.Now()

	var (
		booking  *domain.Booking
		location *domain.SlotLocation
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		b, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EntryScan: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EntryScan: failed to get booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !b.CanEnter() {
			uc.logger.Warn("EntryScan: booking id=%s is %s, entry rejected", bookingID, b.Status)
			return ErrInvalidState
		}

		// 2.2. Проверяем токен доступа, на въезде он не гасится
		token, err := uc.tokenRepo.GetByCode(txCtx, bookingID, code)
		if err != nil {
			if errors.Is(err, tokenRepo.ErrTokenNotFound) {
				uc.logger.Warn("EntryScan: token not found for booking id=%s", bookingID)
				return ErrTokenNotFound
			}
			uc.logger.Error("EntryScan: failed to get token for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
		}

		if token.IsUsed {
			uc.logger.Warn("EntryScan: token for booking id=%s already used", bookingID)
			return ErrTokenAlreadyUsed
		}

		// 2.3. Условный переход pending -> active
		if err := uc.bookingRepo.MarkEntered(txCtx, bookingID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrInvalidState
			}
			uc.logger.Error("EntryScan: failed to mark booking id=%s entered: %v", bookingID, err)
			return fmt.Errorf("%w: failed to activate booking: %v", ErrInternal, err)
		}

		// 2.4. Слот переходит reserved -> occupied
		if err := uc.slotRepo.UpdateStatusIf(txCtx, b.SlotID, domain.SlotReserved, domain.SlotOccupied); err != nil {
			if errors.Is(err, slotRepo.ErrStatusConflict) {
				uc.logger.Warn("EntryScan: slot id=%s is not reserved, entry rejected", b.SlotID)
				return ErrInvalidState
			}
			uc.logger.Error("EntryScan: failed to occupy slot id=%s: %v", b.SlotID, err)
			return fmt.Errorf("%w: failed to occupy slot: %v", ErrInternal, err)
		}

		// 2.5. Определяем, куда направить водителя
		loc, err := uc.slotRepo.GetLocation(txCtx, b.SlotID)
		if err != nil {
			uc.logger.Error("EntryScan: failed to get slot location id=%s: %v", b.SlotID, err)
			return fmt.Errorf("%w: failed to get slot location: %v", ErrInternal, err)
		}

		booking = b
		location = loc
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("EntryScan: booking id=%s activated, slot %s", bookingID, location.SlotNumber)

	// 3. Публикуем событие после фиксации транзакции
	uc.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		Type:       events.TypeBookingActivated,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SlotID:     booking.SlotID,
		Status:     string(domain.StatusActive),
		OccurredAt: now,
	})

	return &Response{
		BookingID:   booking.ID,
		Status:      string(domain.StatusActive),
		ActualStart: now,
		SlotNumber:  location.SlotNumber,
		ZoneName:    location.ZoneName,
		FloorNumber: location.FloorNumber,
		CentreName:  location.CentreName,
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
