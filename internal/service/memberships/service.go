package memberships

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/PW-BookingService/internal/domain"
	membershipRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/membership"
	"github.com/parkwise/PW-BookingService/internal/service/memberships/models"
)

// Service сервис для работы с тарифными планами и подписками
type Service struct {
	membershipRepo MembershipRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(membershipRepo MembershipRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// ListPlans получает список тарифных планов
func (s *Service) ListPlans(ctx context.Context) (*models.PlanListResponse, error) {
	s.logger.Info("ListPlans: fetching membership plans")

	plans, err := s.membershipRepo.ListPlans(ctx)
	if err != nil {
		s.logger.Error("ListPlans: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPlans - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPlans: successfully fetched %d plans", len(plans))
	return models.FromDomainPlanList(plans), nil
}

// Subscribe оформляет подписку пользователя на тарифный план
// У пользователя может быть не более одной активной подписки
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.MembershipResponse, error) {
	s.logger.Info("Subscribe: user=%s, plan=%s, period=%s", req.UserID, req.PlanID, req.BillingPeriod)

	if err := validateSubscribeRequest(req); err != nil {
		s.logger.Warn("Subscribe: validation failed: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()

	var (
		created *domain.UserMembership
		plan    *domain.MembershipPlan
	)

	// Проверка отсутствия активной подписки и создание выполняются атомарно
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		p, err := s.membershipRepo.GetPlanByID(txCtx, req.PlanID)
		if err != nil {
			if errors.Is(err, membershipRepo.ErrPlanNotFound) {
				s.logger.Warn("Subscribe: plan id=%s not found", req.PlanID)
				return ErrPlanNotFound
			}
			s.logger.Error("Subscribe: failed to get plan id=%s: %v", req.PlanID, err)
			return fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
		}

		_, err = s.membershipRepo.GetActiveByUserID(txCtx, req.UserID)
		if err == nil {
			s.logger.Warn("Subscribe: user=%s already has an active membership", req.UserID)
			return ErrAlreadySubscribed
		}
		if !errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			s.logger.Error("Subscribe: failed to check membership for user=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to check membership: %v", ErrInternal, err)
		}

		endDate := now.AddDate(0, 1, 0)
		if domain.BillingPeriod(req.BillingPeriod) == domain.BillingYearly {
			endDate = now.AddDate(1, 0, 0)
		}

		membership := &domain.UserMembership{
			UserID:    req.UserID,
			PlanID:    req.PlanID,
			StartDate: now,
			EndDate:   endDate,
			Status:    domain.MembershipActive,
		}

		m, err := s.membershipRepo.Create(txCtx, membership)
		if err != nil {
			s.logger.Error("Subscribe: failed to create membership: %v", err)
			return fmt.Errorf("%w: failed to create membership: %v", ErrInternal, err)
		}

		created = m
		plan = p
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Subscribe: user=%s subscribed to plan=%s until %s",
		req.UserID, plan.Name, created.EndDate.Format("2006-01-02"))

	return models.FromDomainMembership(created, plan.Name), nil
}

// validateSubscribeRequest валидирует запрос на подписку
func validateSubscribeRequest(req *models.SubscribeRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.PlanID == "" {
		return fmt.Errorf("%w: planId is required", ErrInvalidInput)
	}

	switch domain.BillingPeriod(req.BillingPeriod) {
	case domain.BillingMonthly, domain.BillingYearly:
		return nil
	default:
		return fmt.Errorf("%w: billingPeriod must be monthly or yearly", ErrInvalidInput)
	}
}
