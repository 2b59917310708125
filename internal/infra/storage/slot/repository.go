package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для конфликта сериализации
const serializationFailureCode = "40001"

var slotColumns = []string{
	"id",
	"zone_id",
	"slot_number",
	"vehicle_type",
	"hourly_rate",
	"status",
	"created_at",
}

// Repository репозиторий для работы с парковочными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ParkingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("parking_slots").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - статус слота будет изменяться
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.ParkingSlot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.ZoneID,
		&slot.SlotNumber,
		&slot.VehicleType,
		&slot.HourlyRate,
		&slot.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time
	return &slot, nil
}

// ListAvailableByCentre получает свободные слоты центра с информацией о зоне
// Опционально фильтрует по типу транспорта (точное совпадение)
func (r *Repository) ListAvailableByCentre(ctx context.Context, centreID string, vehicleType *domain.VehicleType) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.zone_id",
		"s.slot_number",
		"s.vehicle_type",
		"s.hourly_rate",
		"s.status",
		"s.created_at",
		"z.zone_name",
		"z.floor_number",
	).
		From("parking_slots s").
		Join("parking_zones z ON z.id = s.zone_id").
		Where(squirrel.Eq{"z.centre_id": centreID}).
		Where(squirrel.Eq{"s.status": domain.SlotAvailable}).
		OrderBy("z.zone_name ASC", "s.slot_number ASC")

	if vehicleType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.vehicle_type": *vehicleType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByCentre - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByCentre - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailableSlot, 0)

	for rows.Next() {
		var available domain.AvailableSlot
		var createdAt sql.NullTime
		var floorNumber sql.NullInt64

		err := rows.Scan(
			&available.Slot.ID,
			&available.Slot.ZoneID,
			&available.Slot.SlotNumber,
			&available.Slot.VehicleType,
			&available.Slot.HourlyRate,
			&available.Slot.Status,
			&createdAt,
			&available.ZoneName,
			&floorNumber,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailableByCentre - scan row: %v", ErrScanRow, err)
		}

		available.Slot.CreatedAt = createdAt.Time
		if floorNumber.Valid {
			floor := int(floorNumber.Int64)
			available.FloorNumber = &floor
		}

		slots = append(slots, &available)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByCentre - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// UpdateStatusIf условно переводит слот из статуса from в статус to
// Если слот уже не в статусе from, возвращает ErrStatusConflict -
// так закрывается гонка между проверкой доступности и резервированием
func (r *Repository) UpdateStatusIf(ctx context.Context, id string, from, to domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_slots").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIf - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)

	// Конфликт сериализации означает, что статус слота успел измениться
	// в конкурентной транзакции - для вызывающего это тот же StatusConflict
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == serializationFailureCode {
		return ErrStatusConflict
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIf - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIf - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		found, err := r.exists(ctx, executor, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrSlotNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// GetLocation получает физическое расположение слота (зона, этаж, центр)
func (r *Repository) GetLocation(ctx context.Context, id string) (*domain.SlotLocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.slot_number",
		"z.zone_name",
		"z.floor_number",
		"c.id",
		"c.name",
	).
		From("parking_slots s").
		Join("parking_zones z ON z.id = s.zone_id").
		Join("parking_centres c ON c.id = z.centre_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - build select query: %v", ErrBuildQuery, err)
	}

	var location domain.SlotLocation
	var floorNumber sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&location.SlotID,
		&location.SlotNumber,
		&location.ZoneName,
		&floorNumber,
		&location.CentreID,
		&location.CentreName,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - scan location: %v", ErrScanRow, err)
	}

	if floorNumber.Valid {
		floor := int(floorNumber.Int64)
		location.FloorNumber = &floor
	}

	return &location, nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("parking_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}
