package roles

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ролями и привязками персонала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ролей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRole получает роль пользователя
// Пользователь без записи в user_roles считается обычным клиентом
func (r *Repository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("role").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetRole - build select query: %v", ErrBuildQuery, err)
	}

	var raw string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return domain.RoleUser, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetRole - scan role: %v", ErrScanRow, err)
	}

	role, err := domain.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("roles.repository: GetRole - %w", err)
	}

	return role, nil
}

// GetManagerCentre получает центр, которым управляет менеджер
func (r *Repository) GetManagerCentre(ctx context.Context, userID string) (string, error) {
	return r.getAssignedCentre(ctx, "parking_centre_managers", userID)
}

// GetAttendantCentre получает центр, к которому привязан дежурный
func (r *Repository) GetAttendantCentre(ctx context.Context, userID string) (string, error) {
	return r.getAssignedCentre(ctx, "parking_centre_attendants", userID)
}

// GetRandomAttendant выбирает случайного дежурного для назначения тикета поддержки
func (r *Repository) GetRandomAttendant(ctx context.Context) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id").
		From("parking_centre_attendants").
		OrderBy("RANDOM()").
		Limit(1).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetRandomAttendant - build select query: %v", ErrBuildQuery, err)
	}

	var userID string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&userID)
	if err == sql.ErrNoRows {
		return "", ErrNoAttendants
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetRandomAttendant - scan row: %v", ErrScanRow, err)
	}

	return userID, nil
}

func (r *Repository) getAssignedCentre(ctx context.Context, table, userID string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("centre_id").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: getAssignedCentre - build select query: %v", ErrBuildQuery, err)
	}

	var centreID string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&centreID)
	if err == sql.ErrNoRows {
		return "", ErrAssignmentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: getAssignedCentre - scan row: %v", ErrScanRow, err)
	}

	return centreID, nil
}
