package domain

import "time"

// TicketStatus is derived from time and the check-in timestamp, never
// stored independently. The same function drives both the check-in gate
// and display.
type TicketStatus string

const (
	TicketUnused        TicketStatus = "UNUSED"
	TicketAvailableSoon TicketStatus = "AVAILABLE_SOON"
	TicketAvailableNow  TicketStatus = "AVAILABLE_NOW"
	TicketLate          TicketStatus = "LATE"
	TicketExpired       TicketStatus = "EXPIRED"
	TicketUsed          TicketStatus = "USED"
)

// Check-in window: gates open CheckInLead before start; a ticket may
// still be used up to LateGrace after the showtime ends.
const (
	CheckInLead = 30 * time.Minute
	LateGrace   = 15 * time.Minute
)

// TicketStatusAt computes the ticket state for a paid order at the
// given instant. A zero minutesToStart already counts as LATE.
func TicketStatusAt(now, startTime, endTime time.Time, checkedAt *time.Time) TicketStatus {
	if checkedAt != nil {
		return TicketUsed
	}
	toStart := startTime.Sub(now)
	switch {
	case toStart > CheckInLead:
		return TicketAvailableSoon
	case toStart > 0:
		return TicketAvailableNow
	case now.Sub(endTime) <= LateGrace:
		return TicketLate
	default:
		return TicketExpired
	}
}

// CheckInPermitted reports whether a ticket in the given state may be
// validated for entry.
func CheckInPermitted(status TicketStatus) bool {
	return status == TicketAvailableNow || status == TicketLate
}
