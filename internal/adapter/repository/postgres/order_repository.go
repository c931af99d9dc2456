package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO orders (id, user_id, showtime_id, ticket_type, total_price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, queryHeader, order.ID, order.UserID, order.ShowtimeID, order.TicketType, order.TotalPrice, order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order header: %w", err)
	}

	querySeat := `
	INSERT INTO order_seats (order_id, seat_id)
	VALUES ($1, $2)
	`

	stmt, err := tx.PrepareContext(ctx, querySeat)
	if err != nil {
		return fmt.Errorf("failed to prepare order seat statement: %w", err)
	}

	defer stmt.Close()

	for _, seatID := range order.SeatIDs {
		if _, err := stmt.ExecContext(ctx, order.ID, seatID); err != nil {
			return fmt.Errorf("failed to insert order seat %s: %w", seatID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
	SELECT id, user_id, showtime_id, ticket_type, total_price, status, created_at, paid_at, cancelled_at, refunded_at, checked_at
	FROM orders
	WHERE id = $1
	`

	var order domain.Order
	var paidAt, cancelledAt, refundedAt, checkedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.ShowtimeID,
		&order.TicketType,
		&order.TotalPrice,
		&order.Status,
		&order.CreatedAt,
		&paidAt,
		&cancelledAt,
		&refundedAt,
		&checkedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}
	if cancelledAt.Valid {
		order.CancelledAt = &cancelledAt.Time
	}
	if refundedAt.Valid {
		order.RefundedAt = &refundedAt.Time
	}
	if checkedAt.Valid {
		order.CheckedAt = &checkedAt.Time
	}

	seatQuery := `SELECT seat_id FROM order_seats WHERE order_id = $1`
	rows, err := r.db.QueryContext(ctx, seatQuery, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}
		order.SeatIDs = append(order.SeatIDs, seatID)
	}

	return &order, rows.Err()
}

var statusTimestampColumn = map[domain.OrderStatus]string{
	domain.OrderPaid:      "paid_at",
	domain.OrderCancelled: "cancelled_at",
	domain.OrderRefunded:  "refunded_at",
}

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// transitionExec runs the guarded status UPDATE. The row must still be
// in the expected source state or nothing happens. A transition to
// REFUNDED additionally requires the ticket to be unchecked, so a
// refund racing a check-in loses no matter which commit it read.
func transitionExec(ctx context.Context, ex dbtx, id uuid.UUID, from, to domain.OrderStatus, at time.Time) error {
	col, ok := statusTimestampColumn[to]
	if !ok {
		return fmt.Errorf("no timestamp column for status %s", to)
	}

	guard := ""
	if to == domain.OrderRefunded {
		guard = " AND checked_at IS NULL"
	}
	query := fmt.Sprintf(`UPDATE orders SET status = $1, %s = $2 WHERE id = $3 AND status = $4%s`, col, guard)

	result, err := ex.ExecContext(ctx, query, to, at, id, from)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if to == domain.OrderRefunded {
			var status domain.OrderStatus
			var checkedAt sql.NullTime
			readErr := ex.QueryRowContext(ctx, `SELECT status, checked_at FROM orders WHERE id = $1`, id).Scan(&status, &checkedAt)
			if readErr == nil && status == from && checkedAt.Valid {
				return domain.ErrAlreadyChecked
			}
		}
		return fmt.Errorf("%w: order %s is not %s", domain.ErrInvalidTransition, id, from)
	}

	return nil
}

// Transition applies a guarded status change. Two racing transitions
// can never both commit.
func (r *OrderRepository) Transition(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, at time.Time) error {
	return transitionExec(ctx, r.db, id, from, to, at)
}

// TransitionAndRelease flips the order status and frees its seats in
// one transaction, so a terminal order can never leave seats held
// behind. The seat release is idempotent; the guarded transition
// decides whether anything happens at all.
func (r *OrderRepository) TransitionAndRelease(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, at time.Time, showtimeID uuid.UUID, seatIDs []uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if err := transitionExec(ctx, tx, id, from, to, at); err != nil {
		return err
	}

	if len(seatIDs) > 0 {
		query := `
		UPDATE showtime_seats
		SET status = $1, version = version + 1
		WHERE showtime_id = $2 AND id = ANY($3) AND status <> $1
		`
		if _, err := tx.ExecContext(ctx, query, domain.SeatAvailable, showtimeID, pq.Array(seatIDs)); err != nil {
			return fmt.Errorf("failed to release order seats: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) SetChecked(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
	UPDATE orders
	SET checked_at = $1
	WHERE id = $2 AND status = $3 AND checked_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, at, id, domain.OrderPaid)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyChecked
	}

	return nil
}

func (r *OrderRepository) ListExpiredPending(ctx context.Context, createdBefore time.Time) ([]uuid.UUID, error) {
	query := `
	SELECT id FROM orders
	WHERE status = $1 AND created_at < $2
	LIMIT 100
	`

	rows, err := r.db.QueryContext(ctx, query, domain.OrderPending, createdBefore)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
