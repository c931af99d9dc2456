package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

// SeatInventory is the only gateway to seat availability. All mutation
// of the contended seat rows goes through ReserveSeats/ReleaseSeats;
// implementations must make ReserveSeats all-or-nothing under
// concurrent callers (conditional update plus affected-row check, or
// row locks inside one transaction).
type SeatInventory interface {
	// CreateSeats materializes a showtime's inventory once, at showtime
	// creation.
	CreateSeats(ctx context.Context, seats []domain.Seat) error
	GetSeats(ctx context.Context, showtimeID uuid.UUID) ([]domain.Seat, error)
	// GetSeatsByID returns only seats that exist in this showtime's
	// inventory; callers detect foreign seats by comparing lengths.
	GetSeatsByID(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]domain.Seat, error)
	// ReserveSeats claims every listed seat or none of them. It returns
	// domain.ErrSeatsUnavailable when any seat is already held.
	ReserveSeats(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) error
	// ReleaseSeats is idempotent; releasing an available seat is a no-op.
	ReleaseSeats(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) error
}

// OrderRepository persists orders. Status transitions are guarded: the
// update only applies when the row is still in the expected source
// state, so concurrent transitions cannot both win.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// Transition moves id from one status to another and stamps the
	// matching timestamp column. It returns domain.ErrInvalidTransition
	// when the order is no longer in the from state.
	Transition(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, at time.Time) error
	// TransitionAndRelease performs the guarded transition and frees the
	// order's seats in one atomic unit. A transition to REFUNDED also
	// requires the ticket to be unchecked and returns
	// domain.ErrAlreadyChecked when a concurrent check-in won.
	TransitionAndRelease(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, at time.Time, showtimeID uuid.UUID, seatIDs []uuid.UUID) error
	// SetChecked stamps the check-in time on a paid, unchecked order;
	// domain.ErrAlreadyChecked when it was checked concurrently.
	SetChecked(ctx context.Context, id uuid.UUID, at time.Time) error
	ListExpiredPending(ctx context.Context, createdBefore time.Time) ([]uuid.UUID, error)
}

// StaffOperationLog is the append-only audit record of staff actions.
type StaffOperationLog interface {
	Record(ctx context.Context, op *domain.StaffOperation) error
	ByStaff(ctx context.Context, staffID uuid.UUID) ([]domain.StaffOperation, error)
	All(ctx context.Context) ([]domain.StaffOperation, error)
}

// Catalog exposes the read-only collaborator data this engine depends
// on: showtimes, theater layouts and the active pricing strategies.
type Catalog interface {
	GetShowtime(ctx context.Context, id uuid.UUID) (*domain.Showtime, error)
	GetTheaterLayout(ctx context.Context, theaterID uuid.UUID) (*domain.TheaterLayout, error)
	ActivePricingStrategies(ctx context.Context, showtimeID uuid.UUID, now time.Time) ([]domain.PricingStrategy, error)
}
