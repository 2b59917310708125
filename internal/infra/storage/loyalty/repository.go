package loyalty

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с баллами лояльности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория баллов лояльности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает баланс баллов пользователя
// Если записи еще нет, возвращает нулевой баланс без ошибки -
// запись создается лениво при первом начислении
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.LoyaltyPoints, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"points",
		"total_earned",
		"total_redeemed",
		"updated_at",
	).
		From("loyalty_points").
		Where(squirrel.Eq{"user_id": userID})

	// Внутри транзакции блокируем строку - баланс будет изменяться
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var points domain.LoyaltyPoints
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&points.ID,
		&points.UserID,
		&points.Points,
		&points.TotalEarned,
		&points.TotalRedeemed,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return &domain.LoyaltyPoints{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan points: %v", ErrScanRow, err)
	}

	points.UpdatedAt = updatedAt.Time
	return &points, nil
}

// Adjust атомарно изменяет баланс пользователя: начисляет earned и списывает redeemed
// Запись создается при первом обращении (upsert по user_id)
func (r *Repository) Adjust(ctx context.Context, userID string, earned, redeemed int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_points").
		Columns("user_id", "points", "total_earned", "total_redeemed", "updated_at").
		Values(userID, earned-redeemed, earned, redeemed, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			points = loyalty_points.points + EXCLUDED.points,
			total_earned = loyalty_points.total_earned + EXCLUDED.total_earned,
			total_redeemed = loyalty_points.total_redeemed + EXCLUDED.total_redeemed,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Adjust - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Adjust - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
