package vehicle

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

// Код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolationCode = "23505"

var vehicleColumns = []string{
	"id",
	"user_id",
	"vehicle_number",
	"vehicle_type",
	"vehicle_model",
	"vehicle_color",
	"created_at",
}

// Repository репозиторий для работы с транспортными средствами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транспортных средств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует транспортное средство пользователя
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"user_id",
			"vehicle_number",
			"vehicle_type",
			"vehicle_model",
			"vehicle_color",
		).
		Values(
			vehicle.UserID,
			vehicle.VehicleNumber,
			vehicle.VehicleType,
			vehicle.VehicleModel,
			vehicle.VehicleColor,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &createdAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
		return nil, ErrDuplicateNumber
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	vehicle.CreatedAt = createdAt.Time
	return vehicle, nil
}

// GetByID получает транспортное средство по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	vehicle, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return vehicle, nil
}

// GetByUserID получает список транспортных средств пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	var model, color sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.VehicleNumber,
		&vehicle.VehicleType,
		&model,
		&color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if model.Valid {
		vehicle.VehicleModel = &model.String
	}
	if color.Valid {
		vehicle.VehicleColor = &color.String
	}
	vehicle.CreatedAt = createdAt.Time

	return &vehicle, nil
}
