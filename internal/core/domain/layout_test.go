package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetick/booking-engine/internal/core/domain"
)

func seatTypeAt(t *testing.T, seats []domain.Seat, row string, column int) domain.SeatType {
	t.Helper()
	for i := range seats {
		if seats[i].Row == row && seats[i].Column == column {
			return seats[i].Type
		}
	}
	t.Fatalf("seat %s%d not found", row, column)
	return ""
}

func TestGenerateSeats_DefaultHeuristic(t *testing.T) {
	showtimeID := uuid.New()
	layout := domain.TheaterLayout{Rows: 5, Columns: 5}

	seats := domain.GenerateSeats(showtimeID, layout)
	require.Len(t, seats, 25)

	for i := range seats {
		assert.Equal(t, showtimeID, seats[i].ShowtimeID)
		assert.Equal(t, domain.SeatAvailable, seats[i].Status)
	}

	assert.Equal(t, domain.SeatCouple, seatTypeAt(t, seats, "A", 1))
	assert.Equal(t, domain.SeatCouple, seatTypeAt(t, seats, "E", 5))
	assert.Equal(t, domain.SeatDisabled, seatTypeAt(t, seats, "E", 1))

	// Odd row count: the single middle row is vip.
	for c := 1; c <= 5; c++ {
		assert.Equal(t, domain.SeatVIP, seatTypeAt(t, seats, "C", c))
	}

	assert.Equal(t, domain.SeatNormal, seatTypeAt(t, seats, "A", 2))
	assert.Equal(t, domain.SeatNormal, seatTypeAt(t, seats, "B", 3))
	assert.Equal(t, domain.SeatNormal, seatTypeAt(t, seats, "E", 3))
}

func TestGenerateSeats_EvenRowsTwoVIPRows(t *testing.T) {
	seats := domain.GenerateSeats(uuid.New(), domain.TheaterLayout{Rows: 6, Columns: 4})
	require.Len(t, seats, 24)

	assert.Equal(t, domain.SeatVIP, seatTypeAt(t, seats, "C", 2))
	assert.Equal(t, domain.SeatVIP, seatTypeAt(t, seats, "D", 2))
	assert.Equal(t, domain.SeatNormal, seatTypeAt(t, seats, "B", 2))
	assert.Equal(t, domain.SeatNormal, seatTypeAt(t, seats, "E", 2))
}

func TestGenerateSeats_TinyGridHasNoVIP(t *testing.T) {
	seats := domain.GenerateSeats(uuid.New(), domain.TheaterLayout{Rows: 2, Columns: 2})
	require.Len(t, seats, 4)

	for i := range seats {
		assert.NotEqual(t, domain.SeatVIP, seats[i].Type)
	}
}

func TestGenerateSeats_OverlayWins(t *testing.T) {
	layout := domain.TheaterLayout{
		Rows:    2,
		Columns: 3,
		Overlay: [][]string{
			{"vip", "empty", "vip"},
			{"normal", "disabled", "couple"},
		},
	}

	seats := domain.GenerateSeats(uuid.New(), layout)
	require.Len(t, seats, 5)

	assert.Equal(t, domain.SeatVIP, seatTypeAt(t, seats, "A", 1))
	assert.Equal(t, domain.SeatVIP, seatTypeAt(t, seats, "A", 3))
	assert.Equal(t, domain.SeatNormal, seatTypeAt(t, seats, "B", 1))
	assert.Equal(t, domain.SeatDisabled, seatTypeAt(t, seats, "B", 2))
	assert.Equal(t, domain.SeatCouple, seatTypeAt(t, seats, "B", 3))

	// The empty cell produced no seat.
	for i := range seats {
		assert.False(t, seats[i].Row == "A" && seats[i].Column == 2)
	}
}

func TestGenerateSeats_RowLabelsPastZ(t *testing.T) {
	seats := domain.GenerateSeats(uuid.New(), domain.TheaterLayout{Rows: 28, Columns: 1})
	require.Len(t, seats, 28)

	assert.Equal(t, "Z", seats[25].Row)
	assert.Equal(t, "AA", seats[26].Row)
	assert.Equal(t, "AB", seats[27].Row)
}
