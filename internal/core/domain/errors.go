package domain

import (
	"errors"
	"fmt"
	"time"
)

// Business errors returned by the engine. Handlers map these to HTTP
// statuses; anything not listed here is treated as a storage failure.
var (
	ErrSeatsUnavailable  = errors.New("one or more seats are no longer available")
	ErrInvalidSeats      = errors.New("seat does not belong to this showtime")
	ErrEmptySelection    = errors.New("no seats selected")
	ErrInvalidTransition = errors.New("order is not in a valid state for this action")
	ErrAlreadyChecked    = errors.New("ticket has already been checked in")
	ErrTooEarly          = errors.New("check-in window is not open yet")
	ErrTooLate           = errors.New("check-in window has closed")
	ErrRefundNotAllowed  = errors.New("refund window has closed")
	ErrOrderNotFound     = errors.New("order not found")
	ErrShowtimeNotFound  = errors.New("showtime not found")
	ErrUnknownTicketType = errors.New("no base price for ticket type")
)

// CheckInError is returned when a check-in attempt falls outside the
// allowed window. It carries the showtime start so callers can display
// the remaining wait time.
type CheckInError struct {
	Reason        error
	Status        TicketStatus
	ShowtimeStart time.Time
}

func (e *CheckInError) Error() string {
	return fmt.Sprintf("%s (showtime starts %s)", e.Reason, e.ShowtimeStart.Format(time.RFC3339))
}

func (e *CheckInError) Unwrap() error {
	return e.Reason
}
