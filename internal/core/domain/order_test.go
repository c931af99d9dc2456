package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

func TestOrder_CanTransition(t *testing.T) {
	now := time.Now()

	pending := &domain.Order{Status: domain.OrderPending}
	paid := &domain.Order{Status: domain.OrderPaid}
	checked := &domain.Order{Status: domain.OrderPaid, CheckedAt: &now}
	cancelled := &domain.Order{Status: domain.OrderCancelled}
	refunded := &domain.Order{Status: domain.OrderRefunded}

	assert.True(t, pending.CanTransition(domain.OrderPaid))
	assert.True(t, pending.CanTransition(domain.OrderCancelled))
	assert.False(t, pending.CanTransition(domain.OrderRefunded))

	assert.True(t, paid.CanTransition(domain.OrderRefunded))
	assert.False(t, paid.CanTransition(domain.OrderPaid))
	assert.False(t, paid.CanTransition(domain.OrderCancelled))

	// A checked-in ticket is no longer refundable.
	assert.False(t, checked.CanTransition(domain.OrderRefunded))

	assert.False(t, cancelled.CanTransition(domain.OrderPaid))
	assert.False(t, cancelled.CanTransition(domain.OrderRefunded))
	assert.False(t, refunded.CanTransition(domain.OrderPaid))

	assert.False(t, pending.CanTransition(domain.OrderPending))
}

func TestOrder_Terminal(t *testing.T) {
	assert.False(t, (&domain.Order{Status: domain.OrderPending}).Terminal())
	assert.False(t, (&domain.Order{Status: domain.OrderPaid}).Terminal())
	assert.True(t, (&domain.Order{Status: domain.OrderCancelled}).Terminal())
	assert.True(t, (&domain.Order{Status: domain.OrderRefunded}).Terminal())
}
