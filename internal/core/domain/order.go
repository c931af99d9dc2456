package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderRefunded  OrderStatus = "REFUNDED"
)

// Order groups the seats of one purchase for one showtime. TotalPrice
// is computed once at creation and never recomputed. Exactly one of the
// optional timestamps matches the current status; CheckedAt is a ticket
// attribute and only ever set on PAID orders.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	ShowtimeID  uuid.UUID   `json:"showtime_id"`
	SeatIDs     []uuid.UUID `json:"seat_ids"`
	TicketType  TicketType  `json:"ticket_type"`
	TotalPrice  float64     `json:"total_price"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	PaidAt      *time.Time  `json:"paid_at,omitempty"`
	CancelledAt *time.Time  `json:"cancelled_at,omitempty"`
	RefundedAt  *time.Time  `json:"refunded_at,omitempty"`
	CheckedAt   *time.Time  `json:"checked_at,omitempty"`
}

// Terminal reports whether the order no longer holds its seats.
func (o *Order) Terminal() bool {
	return o.Status == OrderCancelled || o.Status == OrderRefunded
}

// CanTransition reports whether moving to the target status is legal
// from the order's current state.
func (o *Order) CanTransition(to OrderStatus) bool {
	switch to {
	case OrderPaid:
		return o.Status == OrderPending
	case OrderCancelled:
		return o.Status == OrderPending
	case OrderRefunded:
		return o.Status == OrderPaid && o.CheckedAt == nil
	default:
		return false
	}
}
