package domain

import (
	"strconv"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatNormal   SeatType = "normal"
	SeatVIP      SeatType = "vip"
	SeatCouple   SeatType = "couple"
	SeatDisabled SeatType = "disabled"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatHeld      SeatStatus = "HELD"
)

// Seat is one cell of a showtime's inventory. Every showtime owns its
// own seat rows, generated once when the showtime is created; a seat is
// HELD exactly while a non-terminal order references it.
type Seat struct {
	ID         uuid.UUID  `json:"id"`
	ShowtimeID uuid.UUID  `json:"showtime_id"`
	Row        string     `json:"row"`
	Column     int        `json:"column"`
	Type       SeatType   `json:"type"`
	Status     SeatStatus `json:"status"`
	Version    int        `json:"-"`
}

func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

// Label renders the seat as printed on a ticket, e.g. "A1".
func (s *Seat) Label() string {
	return s.Row + strconv.Itoa(s.Column)
}
