package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"vehicle_id",
	"slot_id",
	"booking_start",
	"booking_end",
	"actual_start",
	"actual_end",
	"total_hours",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
// Создание бронирования всегда выполняется в сериализуемой транзакции вместе
// с условным резервированием слота — см. usecase create_booking
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"vehicle_id",
			"slot_id",
			"booking_start",
			"booking_end",
			"total_hours",
			"status",
		).
		Values(
			booking.UserID,
			booking.VehicleID,
			booking.SlotID,
			booking.BookingStart,
			booking.BookingEnd,
			booking.TotalHours,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - бронирование будет изменяться
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_start DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCentreWithFilter получает бронирования центра с гибкой фильтрацией
// Связь с центром идет через слот и зону (bookings -> parking_slots -> parking_zones)
// Поддерживает фильтрацию по периоду, статусу и включению терминальных бронирований
func (r *Repository) GetByCentreWithFilter(ctx context.Context, filter domain.CentreBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, len(bookingColumns))
	for i, c := range bookingColumns {
		columns[i] = "b." + c
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("parking_slots s ON s.id = b.slot_id").
		Join("parking_zones z ON z.id = s.zone_id").
		Where(squirrel.Eq{"z.centre_id": filter.CentreID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_start": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.booking_start": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны терминальные - исключаем их
		terminalStatusStrings := make([]string, len(domain.TerminalStatuses))
		for i, s := range domain.TerminalStatuses {
			terminalStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": terminalStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("b.booking_start DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCentreWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCentreWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetExpiredPending получает pending-бронирования, по которым не было entry-сканирования
// дольше допустимого срока после запланированного начала
// Используется воркером автоматической отмены
func (r *Repository) GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"booking_start": cutoff}).
		OrderBy("booking_start ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// MarkEntered переводит бронирование pending -> active, фиксируя фактическое время въезда
// Обновление условное: если бронирование уже не pending, возвращает ErrStatusConflict
func (r *Repository) MarkEntered(ctx context.Context, id string, actualStart time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusActive).
		Set("actual_start", actualStart).
		Set("updated_at", actualStart).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkEntered - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, id, query, args, "MarkEntered")
}

// MarkExited переводит бронирование active -> completed, фиксируя фактическое время выезда
// и пересчитанную длительность
func (r *Repository) MarkExited(ctx context.Context, id string, actualEnd time.Time, totalHours int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCompleted).
		Set("actual_end", actualEnd).
		Set("total_hours", totalHours).
		Set("updated_at", actualEnd).
		Where(squirrel.Eq{"id": id, "status": domain.StatusActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkExited - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, id, query, args, "MarkExited")
}

// Cancel переводит бронирование в статус cancelled
// Допустимо только из нетерминальных статусов (pending, active)
func (r *Repository) Cancel(ctx context.Context, id string, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "status": activeStatusStrings}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, executor, id, query, args, "Cancel")
}

// execConditional выполняет условное обновление статуса и различает
// "не найдено" и "найдено, но в другом статусе"
func (r *Repository) execConditional(ctx context.Context, executor DBExecutor, id string, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, executor, id)
		if err != nil {
			return fmt.Errorf("%w: %s - check existence: %v", ErrExecQuery, op, err)
		}
		if !exists {
			return ErrBookingNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// scanBooking сканирует одну строку результата в бронирование
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var actualStart, actualEnd, createdAt, updatedAt sql.NullTime
	var totalHours sql.NullInt64

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VehicleID,
		&booking.SlotID,
		&booking.BookingStart,
		&booking.BookingEnd,
		&actualStart,
		&actualEnd,
		&totalHours,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	applyNullables(&booking, actualStart, actualEnd, totalHours, createdAt, updatedAt)
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var actualStart, actualEnd, createdAt, updatedAt sql.NullTime
		var totalHours sql.NullInt64

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.VehicleID,
			&booking.SlotID,
			&booking.BookingStart,
			&booking.BookingEnd,
			&actualStart,
			&actualEnd,
			&totalHours,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		applyNullables(&booking, actualStart, actualEnd, totalHours, createdAt, updatedAt)
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func applyNullables(b *domain.Booking, actualStart, actualEnd sql.NullTime, totalHours sql.NullInt64, createdAt, updatedAt sql.NullTime) {
	if actualStart.Valid {
		t := actualStart.Time
		b.ActualStart = &t
	}
	if actualEnd.Valid {
		t := actualEnd.Time
		b.ActualEnd = &t
	}
	if totalHours.Valid {
		b.TotalHours = int(totalHours.Int64)
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
}
