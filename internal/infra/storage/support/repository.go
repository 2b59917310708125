package support

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/parkwise/PW-BookingService/internal/domain"
	"github.com/parkwise/PW-BookingService/pkg/dbmetrics"
	"github.com/parkwise/PW-BookingService/pkg/psqlbuilder"
)

var ticketColumns = []string{
	"id",
	"user_id",
	"subject",
	"description",
	"category",
	"priority",
	"status",
	"assigned_to",
	"resolved_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с тикетами поддержки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тикетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тикет поддержки
func (r *Repository) Create(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customer_support").
		Columns(
			"user_id",
			"subject",
			"description",
			"category",
			"priority",
			"status",
			"assigned_to",
		).
		Values(
			ticket.UserID,
			ticket.Subject,
			ticket.Description,
			ticket.Category,
			ticket.Priority,
			ticket.Status,
			ticket.AssignedTo,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ticket.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	ticket.CreatedAt = createdAt.Time
	ticket.UpdatedAt = updatedAt.Time
	return ticket, nil
}

// ListByUser получает тикеты, созданные пользователем
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.SupportTicket, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// ListByAssignee получает тикеты, назначенные сотруднику
func (r *Repository) ListByAssignee(ctx context.Context, userID string) ([]*domain.SupportTicket, error) {
	return r.list(ctx, squirrel.Eq{"assigned_to": userID})
}

// ListAll получает все тикеты (для менеджеров и администраторов)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.SupportTicket, error) {
	return r.list(ctx, nil)
}

func (r *Repository) list(ctx context.Context, where interface{}) ([]*domain.SupportTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ticketColumns...).
		From("customer_support").
		OrderBy("created_at DESC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tickets := make([]*domain.SupportTicket, 0)

	for rows.Next() {
		var ticket domain.SupportTicket
		var assignedTo sql.NullString
		var resolvedAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.Subject,
			&ticket.Description,
			&ticket.Category,
			&ticket.Priority,
			&ticket.Status,
			&assignedTo,
			&resolvedAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}

		if assignedTo.Valid {
			ticket.AssignedTo = &assignedTo.String
		}
		if resolvedAt.Valid {
			t := resolvedAt.Time
			ticket.ResolvedAt = &t
		}
		ticket.CreatedAt = createdAt.Time
		ticket.UpdatedAt = updatedAt.Time

		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return tickets, nil
}
