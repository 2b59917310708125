package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/internal/infra/events"
	bookingRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/booking"
	rolesRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/roles"
	"github.com/parkwise/PW-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	paymentRepo PaymentRepository
	rolesRepo   RolesRepository
	publisher   EventPublisher
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	paymentRepo PaymentRepository,
	rolesRepo RolesRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		paymentRepo: paymentRepo,
		rolesRepo:   rolesRepo,
		publisher:   publisher,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, персонал - бронирования своего центра
func (s *Service) GetByID(ctx context.Context, id string, identity domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, identity.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkBookingAccess(ctx, booking, identity); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", identity.UserID, id)
		return nil, err
	}

	resp := models.FromDomainBooking(booking)

	// Дополняем ответ платежами
	payments, err := s.paymentRepo.GetByBookingID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get payments for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get payments: %v", ErrInternal, err)
	}
	resp.Payments = models.FromDomainPayments(payments)

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return resp, nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	// Свою историю видит владелец, чужую - только администратор
	if req.UserID != identity.UserID && identity.Role != domain.RoleAdmin {
		s.logger.Warn("GetUserBookings: access denied for user=%s to history of user=%s", identity.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCentreBookings получает бронирования центра с гибкой фильтрацией
// Доступно персоналу центра и администраторам
func (s *Service) GetCentreBookings(ctx context.Context, req *models.GetCentreBookingsRequest, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("GetCentreBookings: fetching bookings for centre=%s, user=%s", req.CentreID, identity.UserID)

	if err := s.checkCentreAccess(ctx, req.CentreID, identity); err != nil {
		s.logger.Warn("GetCentreBookings: access denied for user=%s to centre=%s", identity.UserID, req.CentreID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCentreBookings: invalid filter for centre=%s: %v", req.CentreID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCentreWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCentreBookings: repository error for centre=%s: %v", req.CentreID, err)
		return nil, fmt.Errorf("%w: GetCentreBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCentreBookings: successfully fetched %d bookings for centre=%s", len(bookings), req.CentreID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена, освобождение слота и возврат платежей выполняются в одной транзакции
func (s *Service) Cancel(ctx context.Context, bookingID string, identity domain.Identity) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, identity.UserID)

	now := time.Now()
	var cancelled *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Отменить может владелец или персонал центра
		if err := s.checkBookingAccess(txCtx, booking, identity); err != nil {
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", identity.UserID, bookingID)
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		// Слот освобождается из того состояния, в котором его держит бронирование
		slotHeldAs := domain.SlotReserved
		if booking.Status == domain.StatusActive {
			slotHeldAs = domain.SlotOccupied
		}

		// Условная отмена: если статус уже сменился, откатываемся
		if err := s.bookingRepo.Cancel(txCtx, bookingID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrCannotCancel
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.slotRepo.UpdateStatusIf(txCtx, booking.SlotID, slotHeldAs, domain.SlotAvailable); err != nil {
			s.logger.Error("Cancel: failed to release slot id=%s: %v", booking.SlotID, err)
			return fmt.Errorf("%w: Cancel - failed to release slot: %v", ErrInternal, err)
		}

		// Возвращаем завершенные платежи
		payments, err := s.paymentRepo.GetByBookingID(txCtx, bookingID)
		if err != nil {
			s.logger.Error("Cancel: failed to get payments for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - failed to get payments: %v", ErrInternal, err)
		}

		for _, p := range payments {
			if p.PaymentStatus != domain.PaymentCompleted {
				continue
			}
			if err := s.paymentRepo.UpdateStatus(txCtx, p.ID, domain.PaymentRefunded); err != nil {
				s.logger.Error("Cancel: failed to refund payment id=%s: %v", p.ID, err)
				return fmt.Errorf("%w: Cancel - failed to refund payment: %v", ErrInternal, err)
			}
		}

		cancelled = booking
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)

	s.publisher.PublishBookingEvent(ctx, events.BookingEvent{
		Type:       events.TypeBookingCancelled,
		BookingID:  cancelled.ID,
		UserID:     cancelled.UserID,
		SlotID:     cancelled.SlotID,
		Status:     string(domain.StatusCancelled),
		OccurredAt: now,
	})

	return nil
}

// checkBookingAccess проверяет доступ к бронированию: владелец, персонал центра или админ
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, identity domain.Identity) error {
	if booking.UserID == identity.UserID || identity.Role == domain.RoleAdmin {
		return nil
	}

	if !identity.Role.IsStaff() {
		return ErrAccessDenied
	}

	location, err := s.slotRepo.GetLocation(ctx, booking.SlotID)
	if err != nil {
		s.logger.Error("checkBookingAccess: failed to get slot location id=%s: %v", booking.SlotID, err)
		return fmt.Errorf("%w: failed to get slot location: %v", ErrInternal, err)
	}

	return s.checkCentreAccess(ctx, location.CentreID, identity)
}

// checkCentreAccess проверяет, что персонал привязан к центру
func (s *Service) checkCentreAccess(ctx context.Context, centreID string, identity domain.Identity) error {
	if identity.Role == domain.RoleAdmin {
		return nil
	}

	var (
		assigned string
		err      error
	)

	switch identity.Role {
	case domain.RoleManager:
		assigned, err = s.rolesRepo.GetManagerCentre(ctx, identity.UserID)
	case domain.RoleAttendant:
		assigned, err = s.rolesRepo.GetAttendantCentre(ctx, identity.UserID)
	default:
		return ErrAccessDenied
	}

	if err != nil {
		if errors.Is(err, rolesRepo.ErrAssignmentNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkCentreAccess: failed to get assignment for user=%s: %v", identity.UserID, err)
		return fmt.Errorf("%w: failed to get staff assignment: %v", ErrInternal, err)
	}

	if assigned != centreID {
		return ErrAccessDenied
	}

	return nil
}
