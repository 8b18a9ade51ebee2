package entity

import "time"

// PlatformSettings are the admin-managed marketplace parameters.
type PlatformSettings struct {
	CancellationFee      int64     `json:"cancellation_fee"`
	CommissionRate       float64   `json:"commission_rate"`
	DisputeWindowHours   int       `json:"dispute_window_hours"`
	MinTechnicianBalance int64     `json:"min_technician_balance"`
	Currency             string    `json:"currency"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DisputeWindow returns the window as a duration.
func (s *PlatformSettings) DisputeWindow() time.Duration {
	return time.Duration(s.DisputeWindowHours) * time.Hour
}

// Commission returns the platform commission for a price, rounded half away from zero.
func (s *PlatformSettings) Commission(price int64) int64 {
	raw := float64(price) * s.CommissionRate
	if raw < 0 {
		return -int64(-raw + 0.5)
	}

	return int64(raw + 0.5)
}

// FinancialSummary aggregates platform money flows for the admin dashboard.
type FinancialSummary struct {
	TotalDeposits      int64     `json:"total_deposits"`
	TotalCommissions   int64     `json:"total_commissions"`
	OutstandingBalance int64     `json:"outstanding_balance"`
	CompletedRequests  int64     `json:"completed_requests"`
	CancelledRequests  int64     `json:"cancelled_requests"`
	CancellationFees   int64     `json:"cancellation_fees"`
	OrdersTotal        int64     `json:"orders_total"`
	DeliveredOrders    int64     `json:"delivered_orders"`
	Currency           string    `json:"currency"`
	GeneratedAt        time.Time `json:"generated_at"`
}
