package membership

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

var planColumns = []string{
	"id",
	"name",
	"discount_percentage",
	"price_monthly",
	"price_yearly",
	"created_at",
}

var membershipColumns = []string{
	"id",
	"user_id",
	"plan_id",
	"start_date",
	"end_date",
	"status",
	"created_at",
}

// Repository репозиторий для работы с тарифными планами и подписками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListPlans получает список всех тарифных планов
func (r *Repository) ListPlans(ctx context.Context) ([]*domain.MembershipPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(planColumns...).
		From("membership_plans").
		OrderBy("discount_percentage ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPlans - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPlans - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	plans := make([]*domain.MembershipPlan, 0)

	for rows.Next() {
		var plan domain.MembershipPlan
		var createdAt sql.NullTime

		err := rows.Scan(
			&plan.ID,
			&plan.Name,
			&plan.DiscountPercentage,
			&plan.PriceMonthly,
			&plan.PriceYearly,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListPlans - scan row: %v", ErrScanRow, err)
		}

		plan.CreatedAt = createdAt.Time
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPlans - rows error: %v", ErrScanRow, err)
	}

	return plans, nil
}

// GetPlanByID получает тарифный план по ID
func (r *Repository) GetPlanByID(ctx context.Context, id string) (*domain.MembershipPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(planColumns...).
		From("membership_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPlanByID - build select query: %v", ErrBuildQuery, err)
	}

	var plan domain.MembershipPlan
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&plan.ID,
		&plan.Name,
		&plan.DiscountPercentage,
		&plan.PriceMonthly,
		&plan.PriceYearly,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPlanByID - scan plan: %v", ErrScanRow, err)
	}

	plan.CreatedAt = createdAt.Time
	return &plan, nil
}

// GetActiveByUserID получает действующую подписку пользователя
// Возвращает ErrMembershipNotFound, если активной подписки нет
func (r *Repository) GetActiveByUserID(ctx context.Context, userID string) (*domain.UserMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(membershipColumns...).
		From("user_memberships").
		Where(squirrel.Eq{"user_id": userID, "status": domain.MembershipActive}).
		Where(squirrel.Expr("end_date >= NOW()")).
		OrderBy("end_date DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var membership domain.UserMembership
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&membership.ID,
		&membership.UserID,
		&membership.PlanID,
		&membership.StartDate,
		&membership.EndDate,
		&membership.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserID - scan membership: %v", ErrScanRow, err)
	}

	membership.CreatedAt = createdAt.Time
	return &membership, nil
}

// Create оформляет подписку пользователя на тарифный план
func (r *Repository) Create(ctx context.Context, membership *domain.UserMembership) (*domain.UserMembership, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_memberships").
		Columns(
			"user_id",
			"plan_id",
			"start_date",
			"end_date",
			"status",
		).
		Values(
			membership.UserID,
			membership.PlanID,
			membership.StartDate,
			membership.EndDate,
			membership.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&membership.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	membership.CreatedAt = createdAt.Time
	return membership, nil
}

// ExpireOutdated помечает просроченные активные подписки как expired
// Вызывается воркером вместе с отменой просроченных бронирований
func (r *Repository) ExpireOutdated(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("user_memberships").
		Set("status", domain.MembershipExpired).
		Where(squirrel.Eq{"status": domain.MembershipActive}).
		Where(squirrel.Expr("end_date < NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpireOutdated - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireOutdated - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireOutdated - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
