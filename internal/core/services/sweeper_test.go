package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinetick/booking-engine/internal/core/domain"
	"github.com/cinetick/booking-engine/internal/core/services"
)

func TestSweep_ExpiresEveryListedOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	showtimeID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	cutoff := f.now.Add(-15 * time.Minute)

	f.orders.On("ListExpiredPending", ctx, cutoff).Return([]uuid.UUID{first, second}, nil)

	for _, id := range []uuid.UUID{first, second} {
		seatIDs := []uuid.UUID{uuid.New()}
		f.orders.On("GetByID", ctx, id).Return(&domain.Order{
			ID: id, ShowtimeID: showtimeID, SeatIDs: seatIDs,
			Status: domain.OrderPending, CreatedAt: f.now.Add(-20 * time.Minute),
		}, nil)
		f.orders.On("TransitionAndRelease", ctx, id, domain.OrderPending, domain.OrderCancelled, f.now, showtimeID, seatIDs).Return(nil)
		f.redis.ExpectDel("seats:" + showtimeID.String()).SetVal(1)
	}

	sweeper := services.NewExpirySweeper(f.svc, "")
	sweeper.Sweep(ctx)

	f.orders.AssertNumberOfCalls(t, "TransitionAndRelease", 2)
	assert.NoError(t, f.redis.ExpectationsWereMet())
}

func TestSweep_NothingToDo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.orders.On("ListExpiredPending", ctx, mock.AnythingOfType("time.Time")).Return(nil, nil)

	sweeper := services.NewExpirySweeper(f.svc, "")
	sweeper.Sweep(ctx)

	f.orders.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
