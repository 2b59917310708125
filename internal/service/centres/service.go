package centres

import (
	"context"
	"errors"
	"fmt"

	centreRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/centre"
	"github.com/parkwise/PW-BookingService/internal/service/centres/models"
)

// Service сервис для работы с парковочными центрами
type Service struct {
	centreRepo CentreRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса центров
func NewService(centreRepo CentreRepository, logger Logger) *Service {
	return &Service{
		centreRepo: centreRepo,
		logger:     logger,
	}
}

// List получает список парковочных центров, опционально по городу
func (s *Service) List(ctx context.Context, city *string) (*models.CentreListResponse, error) {
	s.logger.Info("List: fetching centres, city=%v", city)

	centres, err := s.centreRepo.List(ctx, city)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d centres", len(centres))
	return models.FromDomainCentreList(centres), nil
}

// GetByID получает парковочный центр по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CentreResponse, error) {
	s.logger.Info("GetByID: fetching centre id=%s", id)

	centre, err := s.centreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			s.logger.Warn("GetByID: centre id=%s not found", id)
			return nil, ErrCentreNotFound
		}
		s.logger.Error("GetByID: repository error for centre id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCentre(centre), nil
}
