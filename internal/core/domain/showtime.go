package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketType is the pricing category chosen at booking time. It is
// distinct from the physical seat type.
type TicketType string

const (
	TicketNormal  TicketType = "normal"
	TicketStudent TicketType = "student"
	TicketSenior  TicketType = "senior"
	TicketChild   TicketType = "child"
)

// Showtime is a scheduled screening. It owns one seat inventory; base
// prices are per ticket type. The catalog is the source of truth, this
// engine only reads it.
type Showtime struct {
	ID         uuid.UUID
	MovieID    uuid.UUID
	TheaterID  uuid.UUID
	MovieType  string
	StartTime  time.Time
	EndTime    time.Time
	BasePrices map[TicketType]float64
}

// BasePrice returns the base price for the given ticket type.
func (s *Showtime) BasePrice(tt TicketType) (float64, bool) {
	p, ok := s.BasePrices[tt]
	return p, ok
}
