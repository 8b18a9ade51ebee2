package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicketStatus is the lifecycle state of a dispute.
type SupportTicketStatus string

const (
	TicketOpen      SupportTicketStatus = "open"
	TicketResponded SupportTicketStatus = "responded"
	TicketResolved  SupportTicketStatus = "resolved"
)

// SupportTicket is a dispute opened by a client about a service request or an order.
type SupportTicket struct {
	ID               uuid.UUID           `json:"id"`
	ClientID         uuid.UUID           `json:"client_id"`
	ServiceRequestID *uuid.UUID          `json:"service_request_id,omitempty"`
	OrderID          *uuid.UUID          `json:"order_id,omitempty"`
	Subject          string              `json:"subject"`
	Description      string              `json:"description"`
	Status           SupportTicketStatus `json:"status"`
	Response         string              `json:"response,omitempty"`
	RespondedBy      *uuid.UUID          `json:"responded_by,omitempty"`
	ResponseDeadline time.Time           `json:"response_deadline"`
	RespondedAt      *time.Time          `json:"responded_at,omitempty"`
	ResolvedAt       *time.Time          `json:"resolved_at,omitempty"`
	AttachmentKey    string              `json:"attachment_key,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// IsExpired reports whether the ticket is still open past its response deadline.
func (t *SupportTicket) IsExpired(now time.Time) bool {
	return t.Status == TicketOpen && now.After(t.ResponseDeadline)
}

// SupportTicketView carries server-computed deadline state next to the ticket.
type SupportTicketView struct {
	*SupportTicket

	Expired       bool      `json:"expired"`
	ServerTime    time.Time `json:"server_time"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
}

// NewSupportTicketView evaluates the deadline against now.
func NewSupportTicketView(ticket *SupportTicket, now time.Time) *SupportTicketView {
	return &SupportTicketView{
		SupportTicket: ticket,
		Expired:       ticket.IsExpired(now),
		ServerTime:    now,
	}
}
