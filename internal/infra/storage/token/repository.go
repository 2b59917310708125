package token

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

var tokenColumns = []string{
	"id",
	"booking_id",
	"token_code",
	"qr_data",
	"is_used",
	"used_at",
	"created_at",
}

// Repository репозиторий для работы с токенами доступа
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает токен доступа для бронирования
func (r *Repository) Create(ctx context.Context, token *domain.Token) (*domain.Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tokens").
		Columns(
			"booking_id",
			"token_code",
			"qr_data",
			"is_used",
		).
		Values(
			token.BookingID,
			token.TokenCode,
			token.QRData,
			token.IsUsed,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&token.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	token.CreatedAt = createdAt.Time
	return token, nil
}

// GetByCode получает токен по коду в рамках бронирования
// Проверка соответствия кода и бронирования делается на уровне SQL,
// чтобы чужой токен не проходил валидацию
func (r *Repository) GetByCode(ctx context.Context, bookingID, code string) (*domain.Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tokenColumns...).
		From("tokens").
		Where(squirrel.Eq{"booking_id": bookingID, "token_code": code})

	// Внутри транзакции блокируем строку - токен будет погашен
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var token domain.Token
	var usedAt, createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.ID,
		&token.BookingID,
		&token.TokenCode,
		&token.QRData,
		&token.IsUsed,
		&usedAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan token: %v", ErrScanRow, err)
	}

	if usedAt.Valid {
		t := usedAt.Time
		token.UsedAt = &t
	}
	token.CreatedAt = createdAt.Time

	return &token, nil
}

// GetByBookingID получает токен бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Token, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tokenColumns...).
		From("tokens").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var token domain.Token
	var usedAt, createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.ID,
		&token.BookingID,
		&token.TokenCode,
		&token.QRData,
		&token.IsUsed,
		&usedAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan token: %v", ErrScanRow, err)
	}

	if usedAt.Valid {
		t := usedAt.Time
		token.UsedAt = &t
	}
	token.CreatedAt = createdAt.Time

	return &token, nil
}

// MarkUsed условно гасит токен: is_used false -> true
// Если токен уже погашен, возвращает ErrAlreadyUsed -
// повторное сканирование того же QR не проходит
func (r *Repository) MarkUsed(ctx context.Context, id string, usedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tokens").
		Set("is_used", true).
		Set("used_at", usedAt).
		Where(squirrel.Eq{"id": id, "is_used": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		found, err := r.exists(ctx, executor, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrTokenNotFound
		}
		return ErrAlreadyUsed
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, id string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("tokens").
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
