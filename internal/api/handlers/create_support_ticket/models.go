package create_support_ticket

// CreateTicketRequest HTTP request model
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority,omitempty"` // low | medium | high
}
