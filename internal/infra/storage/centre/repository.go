package centre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

var centreColumns = []string{
	"id",
	"name",
	"address",
	"city",
	"state",
	"pincode",
	"latitude",
	"longitude",
	"total_capacity",
	"operating_hours",
	"created_at",
}

// Repository репозиторий для работы с парковочными центрами и зонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория центров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает список всех парковочных центров
// Опционально фильтрует по городу
func (r *Repository) List(ctx context.Context, city *string) ([]*domain.ParkingCentre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(centreColumns...).
		From("parking_centres").
		OrderBy("name ASC")

	if city != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *city})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centres := make([]*domain.ParkingCentre, 0)

	for rows.Next() {
		centre, err := scanCentreRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		centres = append(centres, centre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return centres, nil
}

// GetByID получает парковочный центр по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ParkingCentre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(centreColumns...).
		From("parking_centres").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	centre, err := scanCentreRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrCentreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan centre: %v", ErrScanRow, err)
	}

	return centre, nil
}

// GetZoneByID получает зону по ID
func (r *Repository) GetZoneByID(ctx context.Context, id string) (*domain.ParkingZone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"centre_id",
		"zone_name",
		"zone_type",
		"floor_number",
		"total_slots",
		"created_at",
	).
		From("parking_zones").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetZoneByID - build select query: %v", ErrBuildQuery, err)
	}

	var zone domain.ParkingZone
	var floorNumber sql.NullInt64
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&zone.ID,
		&zone.CentreID,
		&zone.ZoneName,
		&zone.ZoneType,
		&floorNumber,
		&zone.TotalSlots,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetZoneByID - scan zone: %v", ErrScanRow, err)
	}

	if floorNumber.Valid {
		floor := int(floorNumber.Int64)
		zone.FloorNumber = &floor
	}
	zone.CreatedAt = createdAt.Time

	return &zone, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCentreRow(row rowScanner) (*domain.ParkingCentre, error) {
	var centre domain.ParkingCentre
	var latitude, longitude sql.NullFloat64
	var createdAt sql.NullTime

	err := row.Scan(
		&centre.ID,
		&centre.Name,
		&centre.Address,
		&centre.City,
		&centre.State,
		&centre.Pincode,
		&latitude,
		&longitude,
		&centre.TotalCapacity,
		&centre.OperatingHours,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if latitude.Valid {
		centre.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		centre.Longitude = &longitude.Float64
	}
	centre.CreatedAt = createdAt.Time

	return &centre, nil
}
