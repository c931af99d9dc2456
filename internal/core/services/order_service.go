package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cinetick/booking-engine/internal/core/domain"
	"github.com/cinetick/booking-engine/internal/core/ports"
)

const (
	defaultPaymentWindow = 15 * time.Minute
	seatCacheTTL         = 30 * time.Second
)

// OrderService is the order lifecycle manager. It orchestrates the seat
// inventory, the pricing rules and the staff operation log; it is the
// only component allowed to mutate seat availability or order state.
type OrderService struct {
	seats         ports.SeatInventory
	orders        ports.OrderRepository
	staffOps      ports.StaffOperationLog
	catalog       ports.Catalog
	cache         *redis.Client
	now           func() time.Time
	paymentWindow time.Duration
	refunds       domain.RefundPolicy
}

type OrderServiceOption func(*OrderService)

// WithPaymentWindow overrides how long a PENDING order holds its seats.
func WithPaymentWindow(d time.Duration) OrderServiceOption {
	return func(s *OrderService) {
		if d > 0 {
			s.paymentWindow = d
		}
	}
}

// WithRefundPolicy overrides the refund tier table.
func WithRefundPolicy(p domain.RefundPolicy) OrderServiceOption {
	return func(s *OrderService) { s.refunds = p }
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *OrderService) { s.now = now }
}

func NewOrderService(
	seats ports.SeatInventory,
	orders ports.OrderRepository,
	staffOps ports.StaffOperationLog,
	catalog ports.Catalog,
	cache *redis.Client,
	opts ...OrderServiceOption,
) *OrderService {
	s := &OrderService{
		seats:         seats,
		orders:        orders,
		staffOps:      staffOps,
		catalog:       catalog,
		cache:         cache,
		now:           time.Now,
		paymentWindow: defaultPaymentWindow,
		refunds:       domain.DefaultRefundPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder claims the seats atomically, prices them and persists a
// PENDING order. If persisting fails after the claim succeeded, the
// seats are released again before returning.
func (s *OrderService) CreateOrder(ctx context.Context, userID, showtimeID uuid.UUID, seatIDs []uuid.UUID, ticketType domain.TicketType) (*domain.Order, error) {
	if len(seatIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	showtime, err := s.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	base, ok := showtime.BasePrice(ticketType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTicketType, ticketType)
	}

	seats, err := s.seats.GetSeatsByID(ctx, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}
	if len(seats) != len(seatIDs) {
		return nil, domain.ErrInvalidSeats
	}

	strategies, err := s.catalog.ActivePricingStrategies(ctx, showtimeID, s.now())
	if err != nil {
		return nil, err
	}
	applicable := make([]domain.PricingStrategy, 0, len(strategies))
	for i := range strategies {
		if strategies[i].Matches(showtime) {
			applicable = append(applicable, strategies[i])
		}
	}

	total := domain.OrderTotal(base, seats, applicable)

	if err := s.seats.ReserveSeats(ctx, showtimeID, seatIDs); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:         uuid.New(),
		UserID:     userID,
		ShowtimeID: showtimeID,
		SeatIDs:    seatIDs,
		TicketType: ticketType,
		TotalPrice: total,
		Status:     domain.OrderPending,
		CreatedAt:  s.now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.rollbackReservation(ctx, showtimeID, seatIDs)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.invalidateSeatCache(ctx, showtimeID)
	return order, nil
}

// MarkPaid advances a PENDING order to PAID. Calling it twice is an
// error, not a silent success; payment webhooks must dedupe upstream.
func (s *OrderService) MarkPaid(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending {
		return nil, fmt.Errorf("%w: cannot pay %s order", domain.ErrInvalidTransition, order.Status)
	}

	at := s.now()
	if err := s.orders.Transition(ctx, orderID, domain.OrderPending, domain.OrderPaid, at); err != nil {
		return nil, err
	}
	order.Status = domain.OrderPaid
	order.PaidAt = &at
	return order, nil
}

// CancelOrder cancels a PENDING order and releases its seats. A PAID
// order can only be cancelled by staff, which is a refund.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, actorID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.OrderPending:
		at := s.now()
		if err := s.orders.TransitionAndRelease(ctx, orderID, domain.OrderPending, domain.OrderCancelled, at, order.ShowtimeID, order.SeatIDs); err != nil {
			return nil, err
		}
		s.invalidateSeatCache(ctx, order.ShowtimeID)
		order.Status = domain.OrderCancelled
		order.CancelledAt = &at
		return order, nil
	case domain.OrderPaid:
		return s.RefundTicket(ctx, orderID, actorID, "order cancelled by staff")
	default:
		return nil, fmt.Errorf("%w: cannot cancel %s order", domain.ErrInvalidTransition, order.Status)
	}
}

// ExpireIfUnpaid cancels a PENDING order whose payment window has
// elapsed and frees its seats. It is a no-op on anything else, so the
// sweep may call it redundantly.
func (s *OrderService) ExpireIfUnpaid(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending {
		return order, nil
	}
	if s.now().Sub(order.CreatedAt) <= s.paymentWindow {
		return order, nil
	}

	at := s.now()
	if err := s.orders.TransitionAndRelease(ctx, orderID, domain.OrderPending, domain.OrderCancelled, at, order.ShowtimeID, order.SeatIDs); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// Raced with a payment or cancel; whatever won stands.
			return s.orders.GetByID(ctx, orderID)
		}
		return nil, err
	}
	s.invalidateSeatCache(ctx, order.ShowtimeID)
	order.Status = domain.OrderCancelled
	order.CancelledAt = &at
	return order, nil
}

// SellTicket is the counter flow: create and pay in one go, audited as
// a SELL operation. Seats never stay held when any step fails.
func (s *OrderService) SellTicket(ctx context.Context, staffID, showtimeID uuid.UUID, seatIDs []uuid.UUID, ticketType domain.TicketType, paymentMethod string) (*domain.Order, error) {
	order, err := s.CreateOrder(ctx, uuid.Nil, showtimeID, seatIDs, ticketType)
	if err != nil {
		return nil, err
	}

	paid, err := s.MarkPaid(ctx, order.ID)
	if err != nil {
		at := s.now()
		if terr := s.orders.TransitionAndRelease(ctx, order.ID, domain.OrderPending, domain.OrderCancelled, at, showtimeID, seatIDs); terr != nil {
			log.Printf("sell ticket: cancel order %s after failed payment: %v", order.ID, terr)
		} else {
			s.invalidateSeatCache(ctx, showtimeID)
		}
		return nil, fmt.Errorf("sell ticket: %w", err)
	}

	seats, err := s.seats.GetSeatsByID(ctx, showtimeID, seatIDs)
	labels := make([]string, 0, len(seats))
	if err != nil {
		log.Printf("sell ticket: load seat labels for order %s: %v", paid.ID, err)
	} else {
		for i := range seats {
			labels = append(labels, seats[i].Label())
		}
	}

	s.record(ctx, &domain.StaffOperation{
		ID:         uuid.New(),
		StaffID:    staffID,
		Type:       domain.OpSell,
		OrderID:    &paid.ID,
		ShowtimeID: &showtimeID,
		Details: domain.SellDetails{
			TicketType:    ticketType,
			Seats:         labels,
			TotalPrice:    paid.TotalPrice,
			PaymentMethod: paymentMethod,
		},
		CreatedAt: s.now(),
	})
	return paid, nil
}

// RefundTicket refunds a PAID, unchecked order within the refund
// policy, releases its seats and records the reason.
func (s *OrderService) RefundTicket(ctx context.Context, orderID, staffID uuid.UUID, reason string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPaid {
		return nil, fmt.Errorf("%w: cannot refund %s order", domain.ErrInvalidTransition, order.Status)
	}
	if order.CheckedAt != nil {
		return nil, domain.ErrAlreadyChecked
	}

	showtime, err := s.catalog.GetShowtime(ctx, order.ShowtimeID)
	if err != nil {
		return nil, err
	}
	amount, ok := s.refunds.Amount(showtime.StartTime.Sub(s.now()), order.TotalPrice)
	if !ok {
		return nil, domain.ErrRefundNotAllowed
	}

	at := s.now()
	// The repository re-checks checked_at inside the same statement, so
	// a check-in committed after the read above still blocks the refund.
	if err := s.orders.TransitionAndRelease(ctx, orderID, domain.OrderPaid, domain.OrderRefunded, at, order.ShowtimeID, order.SeatIDs); err != nil {
		return nil, err
	}
	s.invalidateSeatCache(ctx, order.ShowtimeID)

	s.record(ctx, &domain.StaffOperation{
		ID:         uuid.New(),
		StaffID:    staffID,
		Type:       domain.OpRefund,
		OrderID:    &orderID,
		ShowtimeID: &order.ShowtimeID,
		Details:    domain.RefundDetails{Reason: reason, RefundAmount: amount},
		CreatedAt:  at,
	})

	order.Status = domain.OrderRefunded
	order.RefundedAt = &at
	return order, nil
}

// CheckTicket validates the check-in window and marks the ticket used.
func (s *OrderService) CheckTicket(ctx context.Context, orderID, staffID uuid.UUID) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.OrderPaid {
		return fmt.Errorf("%w: cannot check in %s order", domain.ErrInvalidTransition, order.Status)
	}
	if order.CheckedAt != nil {
		return domain.ErrAlreadyChecked
	}

	showtime, err := s.catalog.GetShowtime(ctx, order.ShowtimeID)
	if err != nil {
		return err
	}

	status := domain.TicketStatusAt(s.now(), showtime.StartTime, showtime.EndTime, nil)
	if !domain.CheckInPermitted(status) {
		reason := domain.ErrTooLate
		if status == domain.TicketAvailableSoon {
			reason = domain.ErrTooEarly
		}
		return &domain.CheckInError{Reason: reason, Status: status, ShowtimeStart: showtime.StartTime}
	}

	at := s.now()
	if err := s.orders.SetChecked(ctx, orderID, at); err != nil {
		return err
	}

	s.record(ctx, &domain.StaffOperation{
		ID:         uuid.New(),
		StaffID:    staffID,
		Type:       domain.OpCheck,
		OrderID:    &orderID,
		ShowtimeID: &order.ShowtimeID,
		Details:    domain.CheckDetails{TicketStatus: status, CheckedAt: at},
		CreatedAt:  at,
	})
	return nil
}

// TicketStatus computes the display status of an order's ticket.
// Orders that are not PAID have no usable ticket and report UNUSED.
func (s *OrderService) TicketStatus(ctx context.Context, orderID uuid.UUID) (domain.TicketStatus, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.Status != domain.OrderPaid {
		return domain.TicketUnused, nil
	}
	showtime, err := s.catalog.GetShowtime(ctx, order.ShowtimeID)
	if err != nil {
		return "", err
	}
	return domain.TicketStatusAt(s.now(), showtime.StartTime, showtime.EndTime, order.CheckedAt), nil
}

// CreateShowtimeInventory materializes the seat grid for a freshly
// created showtime from its theater's layout.
func (s *OrderService) CreateShowtimeInventory(ctx context.Context, showtimeID, theaterID uuid.UUID) ([]domain.Seat, error) {
	layout, err := s.catalog.GetTheaterLayout(ctx, theaterID)
	if err != nil {
		return nil, err
	}
	seats := domain.GenerateSeats(showtimeID, *layout)
	if err := s.seats.CreateSeats(ctx, seats); err != nil {
		return nil, fmt.Errorf("create seats: %w", err)
	}
	s.invalidateSeatCache(ctx, showtimeID)
	return seats, nil
}

// AvailableSeats reads the showtime's seat map through the cache.
func (s *OrderService) AvailableSeats(ctx context.Context, showtimeID uuid.UUID) ([]domain.Seat, error) {
	key := seatCacheKey(showtimeID)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key).Result(); err == nil {
			var seats []domain.Seat
			if json.Unmarshal([]byte(data), &seats) == nil {
				return seats, nil
			}
		}
	}

	seats, err := s.seats.GetSeats(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if data, err := json.Marshal(seats); err == nil {
			if err := s.cache.Set(ctx, key, data, seatCacheTTL).Err(); err != nil {
				log.Printf("cache seats for showtime %s: %v", showtimeID, err)
			}
		}
	}
	return seats, nil
}

// ByStaff lists a staff member's audit entries, newest first.
func (s *OrderService) ByStaff(ctx context.Context, staffID uuid.UUID) ([]domain.StaffOperation, error) {
	return s.staffOps.ByStaff(ctx, staffID)
}

// AllOperations lists the full audit log, newest first.
func (s *OrderService) AllOperations(ctx context.Context) ([]domain.StaffOperation, error) {
	return s.staffOps.All(ctx)
}

func (s *OrderService) rollbackReservation(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) {
	if err := s.seats.ReleaseSeats(ctx, showtimeID, seatIDs); err != nil {
		log.Printf("release seats for showtime %s after failed order: %v", showtimeID, err)
		return
	}
	s.invalidateSeatCache(ctx, showtimeID)
}

// record appends an audit entry. Audit append failures are logged, not
// surfaced: the business action already committed.
func (s *OrderService) record(ctx context.Context, op *domain.StaffOperation) {
	if err := s.staffOps.Record(ctx, op); err != nil {
		log.Printf("record %s operation for order %v: %v", op.Type, op.OrderID, err)
	}
}

func (s *OrderService) invalidateSeatCache(ctx context.Context, showtimeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, seatCacheKey(showtimeID)).Err(); err != nil {
		log.Printf("invalidate seat cache for showtime %s: %v", showtimeID, err)
	}
}

func seatCacheKey(showtimeID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", showtimeID)
}
