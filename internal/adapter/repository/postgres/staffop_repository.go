package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

type StaffOperationRepository struct {
	db *sql.DB
}

func NewStaffOperationRepository(db *sql.DB) *StaffOperationRepository {
	return &StaffOperationRepository{db: db}
}

// Record appends one audit row. The table has no update or delete path.
func (r *StaffOperationRepository) Record(ctx context.Context, op *domain.StaffOperation) error {
	details, err := domain.MarshalDetails(op.Details)
	if err != nil {
		return fmt.Errorf("failed to encode operation details: %w", err)
	}

	query := `
	INSERT INTO staff_operations (id, staff_id, op_type, order_id, showtime_id, details, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(ctx, query, op.ID, op.StaffID, op.Type, op.OrderID, op.ShowtimeID, details, op.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert staff operation: %w", err)
	}
	return nil
}

func (r *StaffOperationRepository) ByStaff(ctx context.Context, staffID uuid.UUID) ([]domain.StaffOperation, error) {
	query := `
	SELECT id, staff_id, op_type, order_id, showtime_id, details, created_at
	FROM staff_operations
	WHERE staff_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, staffID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanStaffOperations(rows)
}

func (r *StaffOperationRepository) All(ctx context.Context) ([]domain.StaffOperation, error) {
	query := `
	SELECT id, staff_id, op_type, order_id, showtime_id, details, created_at
	FROM staff_operations
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanStaffOperations(rows)
}

func scanStaffOperations(rows *sql.Rows) ([]domain.StaffOperation, error) {
	var ops []domain.StaffOperation
	for rows.Next() {
		var op domain.StaffOperation
		var orderID, showtimeID uuid.NullUUID
		var details []byte

		if err := rows.Scan(&op.ID, &op.StaffID, &op.Type, &orderID, &showtimeID, &details, &op.CreatedAt); err != nil {
			return nil, err
		}
		if orderID.Valid {
			op.OrderID = &orderID.UUID
		}
		if showtimeID.Valid {
			op.ShowtimeID = &showtimeID.UUID
		}

		decoded, err := domain.UnmarshalDetails(details)
		if err != nil {
			return nil, fmt.Errorf("failed to decode operation details: %w", err)
		}
		op.Details = decoded

		ops = append(ops, op)
	}
	return ops, rows.Err()
}
