package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	membershipRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/membership"
	slotRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/slot"
	vehicleRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/vehicle"
	"github.com/parkwise/PW-BookingService/pkg/qrtoken"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	vehicleRepo    VehicleRepository
	membershipRepo MembershipRepository
	loyaltyRepo    LoyaltyRepository
	paymentRepo    PaymentRepository
	tokenRepo      TokenRepository
	publisher      EventPublisher
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	vehicleRepo VehicleRepository,
	membershipRepo MembershipRepository,
	loyaltyRepo LoyaltyRepository,
	paymentRepo PaymentRepository,
	tokenRepo TokenRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		slotRepo:       slotRepo,
		vehicleRepo:    vehicleRepo,
		membershipRepo: membershipRepo,
		loyaltyRepo:    loyaltyRepo,
		paymentRepo:    paymentRepo,
		tokenRepo:      tokenRepo,
		publisher:      publisher,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Резервирование слота, платеж, списание баллов и выпуск токена выполняются
// в одной сериализуемой транзакции: либо все вместе, либо ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, slot=%s, vehicle=%s, start=%s, end=%s",
		req.UserID, req.SlotID, req.VehicleID,
		req.BookingStart.Format("2006-01-02 15:04"), req.BookingEnd.Format("2006-01-02 15:04"))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем транспортное средство и проверяем владельца
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if vehicle.UserID != req.UserID {
		uc.logger.Warn("CreateBooking: vehicle id=%s does not belong to user id=%s", req.VehicleID, req.UserID)
		return nil, ErrVehicleNotOwned
	}

	var (
		result *domain.Booking
		quote  domain.PriceQuote
		token  *domain.Token
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Тип транспорта должен точно совпадать с типом слота
		if !slot.AcceptsVehicle(vehicle.VehicleType) {
			uc.logger.Warn("CreateBooking: vehicle type %s does not match slot type %s",
				vehicle.VehicleType, slot.VehicleType)
			return ErrVehicleTypeMismatch
		}

		if !slot.IsAvailable() {
			uc.logger.Warn("CreateBooking: slot id=%s is %s", req.SlotID, slot.Status)
			return ErrSlotNotAvailable
		}

		// 4.3. Определяем скидку по подписке (отсутствие подписки - не ошибка)
		discountPercentage := 0.0
		membership, err := uc.membershipRepo.GetActiveByUserID(txCtx, req.UserID)
		if err != nil && !errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			uc.logger.Error("CreateBooking: failed to get membership for user id=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get membership: %v", ErrInternal, err)
		}
		if membership != nil {
			plan, err := uc.membershipRepo.GetPlanByID(txCtx, membership.PlanID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get plan id=%s: %v", membership.PlanID, err)
				return fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
			}
			discountPercentage = plan.DiscountPercentage
		}

		// 4.4. Получаем баланс баллов (с блокировкой - будет списание)
		points, err := uc.loyaltyRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get loyalty points for user id=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get loyalty points: %v", ErrInternal, err)
		}

		// 4.5. Считаем стоимость
		quote = domain.ComputeQuote(req.BookingStart, req.BookingEnd,
			slot.HourlyRate, discountPercentage, points.Points, req.UsePoints)

		// 4.6. Условное резервирование слота закрывает гонку между
		// проверкой доступности и записью
		err = uc.slotRepo.UpdateStatusIf(txCtx, req.SlotID, domain.SlotAvailable, domain.SlotReserved)
		if err != nil {
			if errors.Is(err, slotRepo.ErrStatusConflict) {
				uc.logger.Warn("CreateBooking: slot id=%s was taken concurrently", req.SlotID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to reserve slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 4.7. Создаем бронирование
		booking := &domain.Booking{
			UserID:       req.UserID,
			VehicleID:    req.VehicleID,
			SlotID:       req.SlotID,
			BookingStart: req.BookingStart,
			BookingEnd:   req.BookingEnd,
			TotalHours:   quote.Hours,
			Status:       domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.8. Фиксируем платеж (оплата при бронировании)
		transactionID := uuid.NewString()
		payment := &domain.Payment{
			BookingID:     created.ID,
			UserID:        req.UserID,
			Amount:        quote.TotalAmount,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: domain.PaymentCompleted,
			PointsUsed:    quote.PointsRedeemed(),
			TransactionID: &transactionID,
			PaidAt:        &now,
		}

		if _, err := uc.paymentRepo.Create(txCtx, payment); err != nil {
			uc.logger.Error("CreateBooking: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		// 4.9. Начисляем и списываем баллы одним атомарным изменением
		if err := uc.loyaltyRepo.Adjust(txCtx, req.UserID, quote.PointsEarned, quote.PointsRedeemed()); err != nil {
			uc.logger.Error("CreateBooking: failed to adjust loyalty points: %v", err)
			return fmt.Errorf("%w: failed to adjust loyalty points: %v", ErrInternal, err)
		}

		// 4.10. Выпускаем одноразовый токен доступа с QR-кодом
		code := qrtoken.NewCode(now)
		qrData, err := qrtoken.Encode(qrtoken.Payload{
			BookingID:  created.ID,
			TokenCode:  code,
			SlotNumber: slot.SlotNumber,
			Vehicle:    vehicle.VehicleNumber,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to encode QR payload: %v", err)
			return fmt.Errorf("%w: failed to encode QR payload: %v", ErrInternal, err)
		}

		token = &domain.Token{
			BookingID: created.ID,
			TokenCode: code,
			QRData:    qrData,
			IsUsed:    false,
		}

		if _, err := uc.tokenRepo.Create(txCtx, token); err != nil {
			uc.logger.Error("CreateBooking: failed to create token: %v", err)
			return fmt.Errorf("%w: failed to create token: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", result.ID, quote.TotalAmount)

	// 5. Публикуем событие после фиксации транзакции
	uc.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		Type:       events.TypeBookingCreated,
		BookingID:  result.ID,
		UserID:     result.UserID,
		SlotID:     result.SlotID,
		Status:     string(result.Status),
		OccurredAt: now,
	})

	return &Response{
		BookingID:          result.ID,
		UserID:             result.UserID,
		SlotID:             result.SlotID,
		VehicleID:          result.VehicleID,
		BookingStart:       result.BookingStart,
		BookingEnd:         result.BookingEnd,
		TotalHours:         result.TotalHours,
		Status:             string(result.Status),
		BaseAmount:         quote.BaseAmount,
		MembershipDiscount: quote.MembershipDiscount,
		PointsDiscount:     quote.PointsDiscount,
		TotalAmount:        quote.TotalAmount,
		PointsEarned:       quote.PointsEarned,
		PointsRedeemed:     quote.PointsRedeemed(),
		TokenCode:          token.TokenCode,
		QRData:             token.QRData,
		CreatedAt:          result.CreatedAt,
	}, nil
}
