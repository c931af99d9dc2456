package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

func (r *SeatRepository) CreateSeats(ctx context.Context, seats []domain.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO showtime_seats (id, showtime_id, seat_row, seat_column, seat_type, status, version) VALUES `)
	args := make([]interface{}, 0, len(seats)*7)
	for i, s := range seats {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, s.ID, s.ShowtimeID, s.Row, s.Column, s.Type, s.Status, s.Version)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("failed to insert showtime seats: %w", err)
	}
	return nil
}

func (r *SeatRepository) GetSeats(ctx context.Context, showtimeID uuid.UUID) ([]domain.Seat, error) {
	query := `
	SELECT id, showtime_id, seat_row, seat_column, seat_type, status, version
	FROM showtime_seats
	WHERE showtime_id = $1
	ORDER BY seat_row, seat_column
	`

	rows, err := r.db.QueryContext(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanSeats(rows)
}

func (r *SeatRepository) GetSeatsByID(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) ([]domain.Seat, error) {
	query := `
	SELECT id, showtime_id, seat_row, seat_column, seat_type, status, version
	FROM showtime_seats
	WHERE showtime_id = $1 AND id = ANY($2)
	ORDER BY seat_row, seat_column
	`

	rows, err := r.db.QueryContext(ctx, query, showtimeID, pq.Array(seatIDs))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanSeats(rows)
}

// ReserveSeats claims all listed seats in one conditional UPDATE. The
// statement only touches rows that are still AVAILABLE, so two
// concurrent claims over an overlapping set cannot both see a full
// affected-row count; the loser rolls back untouched.
func (r *SeatRepository) ReserveSeats(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) error {
	if len(seatIDs) == 0 {
		return domain.ErrEmptySelection
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	query := `
	UPDATE showtime_seats
	SET status = $1, version = version + 1
	WHERE showtime_id = $2 AND id = ANY($3) AND status = $4
	`

	result, err := tx.ExecContext(ctx, query, domain.SeatHeld, showtimeID, pq.Array(seatIDs), domain.SeatAvailable)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected != int64(len(seatIDs)) {
		// Rolled back via defer. Distinguish foreign seats from seats
		// another order beat us to.
		var known int
		countQuery := `SELECT COUNT(*) FROM showtime_seats WHERE showtime_id = $1 AND id = ANY($2)`
		if err := tx.QueryRowContext(ctx, countQuery, showtimeID, pq.Array(seatIDs)).Scan(&known); err != nil {
			return err
		}
		if known != len(seatIDs) {
			return domain.ErrInvalidSeats
		}
		return domain.ErrSeatsUnavailable
	}

	return tx.Commit()
}

// ReleaseSeats is idempotent: seats already available are left alone.
func (r *SeatRepository) ReleaseSeats(ctx context.Context, showtimeID uuid.UUID, seatIDs []uuid.UUID) error {
	if len(seatIDs) == 0 {
		return nil
	}

	query := `
	UPDATE showtime_seats
	SET status = $1, version = version + 1
	WHERE showtime_id = $2 AND id = ANY($3) AND status <> $1
	`

	_, err := r.db.ExecContext(ctx, query, domain.SeatAvailable, showtimeID, pq.Array(seatIDs))
	return err
}

func scanSeats(rows *sql.Rows) ([]domain.Seat, error) {
	var seats []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.ID, &s.ShowtimeID, &s.Row, &s.Column, &s.Type, &s.Status, &s.Version); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
