package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetick/booking-engine/internal/adapter/repository/postgres"
	"github.com/cinetick/booking-engine/internal/core/domain"
)

func newOrderRepo(t *testing.T) (*postgres.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return postgres.NewOrderRepository(db), mock
}

func TestTransition_GuardedOnSourceStatus(t *testing.T) {
	repo, mock := newOrderRepo(t)
	at := time.Now()

	// The row already left PENDING; the guarded UPDATE touches nothing.
	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Transition(context.Background(), uuid.New(), domain.OrderPending, domain.OrderPaid, at)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransition_RefundGuardedOnCheckedAt(t *testing.T) {
	repo, mock := newOrderRepo(t)
	orderID := uuid.New()
	at := time.Now()

	// A check-in committed between the caller's read and this UPDATE:
	// the row is still PAID but checked_at is set, so the refund
	// statement matches nothing.
	mock.ExpectExec(`UPDATE orders SET status = \$1, refunded_at = \$2 WHERE id = \$3 AND status = \$4 AND checked_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status, checked_at FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"status", "checked_at"}).
			AddRow(string(domain.OrderPaid), at.Add(-time.Minute)))

	err := repo.Transition(context.Background(), orderID, domain.OrderPaid, domain.OrderRefunded, at)

	assert.ErrorIs(t, err, domain.ErrAlreadyChecked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransition_RefundOfNonPaidOrder(t *testing.T) {
	repo, mock := newOrderRepo(t)
	at := time.Now()

	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status, checked_at FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"status", "checked_at"}).
			AddRow(string(domain.OrderCancelled), nil))

	err := repo.Transition(context.Background(), uuid.New(), domain.OrderPaid, domain.OrderRefunded, at)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.NotErrorIs(t, err, domain.ErrAlreadyChecked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionAndRelease_OneTransaction(t *testing.T) {
	repo, mock := newOrderRepo(t)
	orderID := uuid.New()
	showtimeID := uuid.New()
	seatIDs := []uuid.UUID{uuid.New(), uuid.New()}
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE showtime_seats").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.TransitionAndRelease(context.Background(), orderID, domain.OrderPending, domain.OrderCancelled, at, showtimeID, seatIDs)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionAndRelease_NoReleaseWhenTransitionLoses(t *testing.T) {
	repo, mock := newOrderRepo(t)
	at := time.Now()

	// The guarded UPDATE matched nothing; the seat release must not run
	// and the whole transaction rolls back.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.TransitionAndRelease(context.Background(), uuid.New(), domain.OrderPending, domain.OrderCancelled, at, uuid.New(), []uuid.UUID{uuid.New()})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionAndRelease_RollsBackWhenReleaseFails(t *testing.T) {
	repo, mock := newOrderRepo(t)
	at := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE showtime_seats").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.TransitionAndRelease(context.Background(), uuid.New(), domain.OrderPending, domain.OrderCancelled, at, uuid.New(), []uuid.UUID{uuid.New()})

	// The status flip is rolled back with the failed release, so a
	// retry of the whole operation starts from PENDING again.
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
