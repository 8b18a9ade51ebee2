package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestServiceRequest_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from ServiceRequestStatus
		to   ServiceRequestStatus
		want bool
	}{
		{ServiceRequestPending, ServiceRequestAccepted, true},
		{ServiceRequestAccepted, ServiceRequestInProgress, true},
		{ServiceRequestInProgress, ServiceRequestCompleted, true},
		{ServiceRequestPending, ServiceRequestInProgress, false},
		{ServiceRequestAccepted, ServiceRequestPending, false},
		{ServiceRequestCompleted, ServiceRequestAccepted, false},
		{ServiceRequestCancelled, ServiceRequestAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			req := &ServiceRequest{Status: tt.from}
			assert.Equal(t, tt.want, req.CanAdvanceTo(tt.to))
		})
	}
}

func TestServiceRequest_CanBeCancelledBy(t *testing.T) {
	assert.True(t, (&ServiceRequest{Status: ServiceRequestPending}).CanBeCancelledBy(RoleClient))
	assert.True(t, (&ServiceRequest{Status: ServiceRequestAccepted}).CanBeCancelledBy(RoleTechnician))
	assert.False(t, (&ServiceRequest{Status: ServiceRequestInProgress}).CanBeCancelledBy(RoleClient))
	assert.True(t, (&ServiceRequest{Status: ServiceRequestInProgress}).CanBeCancelledBy(RoleAdmin))
	assert.False(t, (&ServiceRequest{Status: ServiceRequestCompleted}).CanBeCancelledBy(RoleAdmin))
}

func TestServiceRequest_IsAssignedTo(t *testing.T) {
	techID := uuid.New()
	req := &ServiceRequest{TechnicianID: &techID}

	assert.True(t, req.IsAssignedTo(techID))
	assert.False(t, req.IsAssignedTo(uuid.New()))
	assert.False(t, (&ServiceRequest{}).IsAssignedTo(techID))
}

func TestPlatformSettings_Commission(t *testing.T) {
	settings := &PlatformSettings{CommissionRate: 0.10}

	assert.Equal(t, int64(1500), settings.Commission(15000))
	assert.Equal(t, int64(13), settings.Commission(125))
	assert.Equal(t, int64(0), settings.Commission(0))
}

func TestSupportTicket_IsExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ticket := &SupportTicket{Status: TicketOpen, ResponseDeadline: now.Add(-time.Minute)}

	assert.True(t, ticket.IsExpired(now))

	ticket.Status = TicketResponded
	assert.False(t, ticket.IsExpired(now))

	ticket.Status = TicketOpen
	ticket.ResponseDeadline = now.Add(time.Hour)
	assert.False(t, ticket.IsExpired(now))

	view := NewSupportTicketView(ticket, now)
	assert.False(t, view.Expired)
	assert.Equal(t, now, view.ServerTime)
}

func TestOrder_ComputeTotal(t *testing.T) {
	order := &Order{Items: []*OrderItem{
		{Quantity: 2, UnitPrice: 1500},
		{Quantity: 1, UnitPrice: 700},
	}}

	assert.Equal(t, int64(3700), order.ComputeTotal())
}
