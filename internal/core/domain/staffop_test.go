package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

func TestDetails_RoundTripKeepsVariant(t *testing.T) {
	in := domain.SellDetails{
		TicketType:    domain.TicketStudent,
		Seats:         []string{"C4", "C5"},
		TotalPrice:    216,
		PaymentMethod: "cash",
	}

	data, err := domain.MarshalDetails(in)
	require.NoError(t, err)

	out, err := domain.UnmarshalDetails(data)
	require.NoError(t, err)

	sell, ok := out.(domain.SellDetails)
	require.True(t, ok, "expected SellDetails, got %T", out)
	assert.Equal(t, in, sell)
}

func TestUnmarshalDetails_UnknownType(t *testing.T) {
	_, err := domain.UnmarshalDetails([]byte(`{"type":"PROMOTE","payload":{}}`))
	assert.Error(t, err)
}
