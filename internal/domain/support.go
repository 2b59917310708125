package domain

import "time"

// TicketStatus represents the status of a support ticket
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// TicketPriority represents the priority of a support ticket
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// SupportTicket represents a customer support request
type SupportTicket struct {
	ID          string
	UserID      string
	Subject     string
	Description string
	Category    string
	Priority    TicketPriority
	Status      TicketStatus
	AssignedTo  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
