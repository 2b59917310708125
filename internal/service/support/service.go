package support

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/PW-BookingService/internal/domain"
	rolesRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/roles"
	"github.com/parkwise/PW-BookingService/internal/service/support/models"
)

// Service сервис для работы с тикетами поддержки
type Service struct {
	ticketRepo TicketRepository
	rolesRepo  RolesRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса поддержки
func NewService(ticketRepo TicketRepository, rolesRepo RolesRepository, logger Logger) *Service {
	return &Service{
		ticketRepo: ticketRepo,
		rolesRepo:  rolesRepo,
		logger:     logger,
	}
}

// CreateTicket создает тикет поддержки и назначает его случайному дежурному
// Если дежурных нет, тикет остается неназначенным
func (s *Service) CreateTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.TicketResponse, error) {
	s.logger.Info("CreateTicket: user=%s, category=%s", req.UserID, req.Category)

	if err := validateCreateTicketRequest(req); err != nil {
		s.logger.Warn("CreateTicket: validation failed: %v", err)
		return nil, err
	}

	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.TicketPriority(req.Priority)
	}

	ticket := &domain.SupportTicket{
		UserID:      req.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      domain.TicketOpen,
	}

	assignee, err := s.rolesRepo.GetRandomAttendant(ctx)
	if err != nil {
		if !errors.Is(err, rolesRepo.ErrNoAttendants) {
			s.logger.Error("CreateTicket: failed to pick attendant: %v", err)
			return nil, fmt.Errorf("%w: CreateTicket - failed to pick attendant: %v", ErrInternal, err)
		}
		s.logger.Warn("CreateTicket: no attendants registered, ticket stays unassigned")
	} else {
		ticket.AssignedTo = &assignee
	}

	created, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		s.logger.Error("CreateTicket: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTicket - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTicket: successfully created ticket id=%s", created.ID)
	return models.FromDomainTicket(created), nil
}

// ListTickets получает тикеты в зависимости от роли:
// пользователи видят свои тикеты, дежурные - назначенные им,
// менеджеры и администраторы - все
func (s *Service) ListTickets(ctx context.Context, identity domain.Identity) (*models.TicketListResponse, error) {
	s.logger.Info("ListTickets: user=%s, role=%s", identity.UserID, identity.Role)

	var (
		tickets []*domain.SupportTicket
		err     error
	)

	switch identity.Role {
	case domain.RoleManager, domain.RoleAdmin:
		tickets, err = s.ticketRepo.ListAll(ctx)
	case domain.RoleAttendant:
		tickets, err = s.ticketRepo.ListByAssignee(ctx, identity.UserID)
	default:
		tickets, err = s.ticketRepo.ListByUser(ctx, identity.UserID)
	}

	if err != nil {
		s.logger.Error("ListTickets: repository error for user=%s: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListTickets - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTickets: successfully fetched %d tickets for user=%s", len(tickets), identity.UserID)
	return models.FromDomainTicketList(tickets), nil
}

// validateCreateTicketRequest валидирует запрос на создание тикета
func validateCreateTicketRequest(req *models.CreateTicketRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}

	if len(req.Subject) > domain.MaxTicketSubjectLength {
		return fmt.Errorf("%w: subject is too long", ErrInvalidInput)
	}

	if req.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if len(req.Description) > domain.MaxTicketBodyLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}

	if req.Priority != "" {
		switch domain.TicketPriority(req.Priority) {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		default:
			return fmt.Errorf("%w: priority must be low, medium or high", ErrInvalidInput)
		}
	}

	return nil
}
