package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkwise/PW-BookingService/internal/domain"
	centreRepo "github.com/parkwise/PW-BookingService/internal/infra/storage/centre"
)

// UseCase use case получения свободных слотов центра
type UseCase struct {
	centreRepo CentreRepository
	slotRepo   SlotRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(centreRepo CentreRepository, slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		centreRepo: centreRepo,
		slotRepo:   slotRepo,
		logger:     logger,
	}
}

// Execute возвращает свободные слоты центра, опционально по типу транспорта
// Фильтр по типу - точное совпадение, без подбора "подходящих" слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование центра
	centre, err := uc.centreRepo.GetByID(ctx, req.CentreID)
	if err != nil {
		if errors.Is(err, centreRepo.ErrCentreNotFound) {
			uc.logger.Warn("GetAvailableSlots: centre id=%s not found", req.CentreID)
			return nil, ErrCentreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get centre id=%s: %v", req.CentreID, err)
		return nil, fmt.Errorf("%w: failed to get centre: %v", ErrInternal, err)
	}

	// 3. Получаем свободные слоты
	slots, err := uc.slotRepo.ListAvailableByCentre(ctx, req.CentreID, req.VehicleType)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for centre id=%s: %v", req.CentreID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: centre id=%s, %d slot(s) available", req.CentreID, len(slots))

	infos := make([]SlotInfo, 0, len(slots))
	for _, s := range slots {
		infos = append(infos, SlotInfo{
			SlotID:      s.Slot.ID,
			SlotNumber:  s.Slot.SlotNumber,
			ZoneName:    s.ZoneName,
			FloorNumber: s.FloorNumber,
			VehicleType: string(s.Slot.VehicleType),
			HourlyRate:  s.Slot.HourlyRate,
		})
	}

	return &Response{
		CentreID:   centre.ID,
		CentreName: centre.Name,
		Slots:      infos,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CentreID == "" {
		return fmt.Errorf("%w: centreID is required", ErrInvalidInput)
	}

	if req.VehicleType != nil {
		valid := false
		for _, vt := range domain.VehicleTypes {
			if *req.VehicleType == vt {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w: unsupported vehicle type %q", ErrInvalidInput, *req.VehicleType)
		}
	}

	return nil
}
