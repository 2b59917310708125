package exit_scan

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

// UseCase use case завершения бронирования при выезде с парковки
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	tokenRepo    TokenRepository
	paymentRepo  PaymentRepository
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
	paymentRepo PaymentRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		tokenRepo:    tokenRepo,
		paymentRepo:  paymentRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute завершает бронирование по отсканированному токену
// Токен гасится при выезде: повторное сканирование не пройдет.
// Переход active -> completed, освобождение слота, гашение токена и
// расчетный платеж по фактическим часам выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбираем входные данные (QR или пара bookingID+tokenCode)
	bookingID, code, err := resolveCredentials(req)
	if err != nil {
		uc.logger.Warn("ExitScan: failed to resolve credentials: %v", err)
		return nil, err
	}

	uc.logger.Info("ExitScan: booking=%s", bookingID)

	now := uc.timeProvider.Now()

	var (
		booking          *domain.Booking
		actualHours      int
		extraHours       int
		extraAmount      float64
		settlementAmount float64
	)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой
		b, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ExitScan: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ExitScan: failed to get booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !b.CanExit() {
			uc.logger.Warn("ExitScan: booking id=%s is %s, exit rejected", bookingID, b.Status)
			return ErrInvalidState
		}

		// 2.2. Проверяем и гасим токен - одноразовый пропуск
		token, err := uc.tokenRepo.GetByCode(txCtx, bookingID, code)
		if err != nil {
			if errors.Is(err, tokenRepo.ErrTokenNotFound) {
				uc.logger.Warn("ExitScan: token not found for booking id=%s", bookingID)
				return ErrTokenNotFound
			}
			uc.logger.Error("ExitScan: failed to get token for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get token: %v", ErrInternal, err)
		}

		if err := uc.tokenRepo.MarkUsed(txCtx, token.ID, now); err != nil {
			if errors.Is(err, tokenRepo.ErrAlreadyUsed) {
				uc.logger.Warn("ExitScan: token for booking id=%s already used", bookingID)
				return ErrTokenAlreadyUsed
			}
			uc.logger.Error("ExitScan: failed to mark token used for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to mark token used: %v", ErrInternal, err)
		}

		// 2.3. Пересчитываем фактические часы по времени въезда
		actualStart := b.BookingStart
		if b.ActualStart != nil {
			actualStart = *b.ActualStart
		}
		actualHours = domain.BillableHours(actualStart, now)

		// 2.4. Условный переход active -> completed
		if err := uc.bookingRepo.MarkExited(txCtx, bookingID, now, actualHours); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrInvalidState
			}
			uc.logger.Error("ExitScan: failed to mark booking id=%s exited: %v", bookingID, err)
			return fmt.Errorf("%w: failed to complete booking: %v", ErrInternal, err)
		}

		// 2.5. Слот переходит occupied -> available
		if err := uc.slotRepo.UpdateStatusIf(txCtx, b.SlotID, domain.SlotOccupied, domain.SlotAvailable); err != nil {
			if errors.Is(err, slotRepo.ErrStatusConflict) {
				uc.logger.Warn("ExitScan: slot id=%s is not occupied, exit rejected", b.SlotID)
				return ErrInvalidState
			}
			uc.logger.Error("ExitScan: failed to release slot id=%s: %v", b.SlotID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		// 2.6. Расчетный платеж создается на каждом выезде: фактические часы
		// по тарифу слота, к оплате на месте
		slot, err := uc.slotRepo.GetByID(txCtx, b.SlotID)
		if err != nil {
			uc.logger.Error("ExitScan: failed to get slot id=%s: %v", b.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		settlementAmount = float64(actualHours) * slot.HourlyRate

		if actualHours > b.TotalHours {
			extraHours = actualHours - b.TotalHours
			extraAmount = float64(extraHours) * slot.HourlyRate
		}

		payment := &domain.Payment{
			BookingID:     b.ID,
			UserID:        b.UserID,
			Amount:        settlementAmount,
			PaymentMethod: domain.MethodCash,
			PaymentStatus: domain.PaymentPending,
		}

		if _, err := uc.paymentRepo.Create(txCtx, payment); err != nil {
			uc.logger.Error("ExitScan: failed to create settlement payment: %v", err)
			return fmt.Errorf("%w: failed to create settlement payment: %v", ErrInternal, err)
		}

		uc.logger.Info("ExitScan: booking id=%s settlement %.2f pending for %d hour(s), %d extra",
			bookingID, settlementAmount, actualHours, extraHours)

		booking = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ExitScan: booking id=%s completed, actual hours=%d", bookingID, actualHours)

	// 3. Публикуем событие после фиксации транзакции
	uc.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		Type:       events.TypeBookingCompleted,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SlotID:     booking.SlotID,
		Status:     string(domain.StatusCompleted),
		OccurredAt: now,
	})

	actualStart := booking.BookingStart
	if booking.ActualStart != nil {
		actualStart = *booking.ActualStart
	}

	return &Response{
		BookingID:        booking.ID,
		Status:           string(domain.StatusCompleted),
		ActualStart:      actualStart,
		ActualEnd:        now,
		ActualHours:      actualHours,
		SettlementAmount: settlementAmount,
		ExtraHours:       extraHours,
		ExtraAmount:      extraAmount,
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
