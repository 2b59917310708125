package models

import (
	"time"

	"github.com/parkwise/PW-BookingService/internal/domain"
)

// CreateTicketRequest запрос на создание тикета поддержки
type CreateTicketRequest struct {
	UserID      string `json:"userId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority,omitempty"` // low | medium | high, по умолчанию medium
}

// TicketResponse ответ с данными тикета
type TicketResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TicketListResponse ответ со списком тикетов
type TicketListResponse struct {
	Tickets []*TicketResponse `json:"tickets"`
	Total   int               `json:"total"`
}

// FromDomainTicket конвертирует domain модель в response
func FromDomainTicket(t *domain.SupportTicket) *TicketResponse {
	return &TicketResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    t.Category,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		AssignedTo:  t.AssignedTo,
		ResolvedAt:  t.ResolvedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainTicketList конвертирует список domain моделей в response
func FromDomainTicketList(tickets []*domain.SupportTicket) *TicketListResponse {
	result := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, FromDomainTicket(t))
	}

	return &TicketListResponse{
		Tickets: result,
		Total:   len(result),
	}
}
