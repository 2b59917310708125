package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/PW-BookingService/internal/domain"
	vehicleRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/vehicle"
	"github.com/parkwise/PW-BookingService/internal/service/vehicles/models"
)

// Service сервис для работы с транспортными средствами
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса транспортных средств
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Create регистрирует транспортное средство пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: registering vehicle %s for user=%s", req.VehicleNumber, req.UserID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		UserID:        req.UserID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   domain.VehicleType(req.VehicleType),
		VehicleModel:  req.VehicleModel,
		VehicleColor:  req.VehicleColor,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrDuplicateNumber) {
			s.logger.Warn("Create: vehicle number %s already registered", req.VehicleNumber)
			return nil, ErrDuplicateNumber
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered vehicle id=%s", created.ID)
	return models.FromDomainVehicle(created), nil
}

// ListByUser получает список транспортных средств пользователя
// Чужой гараж видит только администратор
func (s *Service) ListByUser(ctx context.Context, userID string, identity domain.Identity) (*models.VehicleListResponse, error) {
	s.logger.Info("ListByUser: fetching vehicles for user=%s", userID)

	if userID != identity.UserID && identity.Role != domain.RoleAdmin {
		s.logger.Warn("ListByUser: access denied for user=%s to vehicles of user=%s", identity.UserID, userID)
		return nil, ErrAccessDenied
	}

	vehicles, err := s.vehicleRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d vehicles for user=%s", len(vehicles), userID)
	return models.FromDomainVehicleList(vehicles), nil
}

// validateCreateRequest валидирует запрос на регистрацию
func validateCreateRequest(req *models.CreateVehicleRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.VehicleNumber == "" {
		return fmt.Errorf("%w: vehicleNumber is required", ErrInvalidInput)
	}

	if len(req.VehicleNumber) > domain.MaxVehicleNumberLength {
		return fmt.Errorf("%w: vehicleNumber is too long", ErrInvalidInput)
	}

	valid := false
	for _, vt := range domain.VehicleTypes {
		if domain.VehicleType(req.VehicleType) == vt {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unsupported vehicle type %q", ErrInvalidInput, req.VehicleType)
	}

	return nil
}
