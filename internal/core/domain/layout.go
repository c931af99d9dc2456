package domain

import (
	"github.com/google/uuid"
)

// LayoutCellEmpty marks a cell in a saved overlay that holds no seat
// (aisles, gaps around the projector booth).
const LayoutCellEmpty = "empty"

// TheaterLayout describes the physical grid of a theater. Overlay, when
// present, assigns an explicit seat type per cell; otherwise the default
// heuristic below decides.
type TheaterLayout struct {
	TheaterID uuid.UUID
	Rows      int
	Columns   int
	Overlay   [][]string
}

// GenerateSeats materializes the seat inventory for a new showtime from
// the theater layout. The result is deterministic: rows are labeled
// A, B, ... top to bottom and columns are numbered from 1.
//
// Without an overlay the default heuristic applies: the middle one or
// two rows are vip, the first and last cells of the grid form a couple
// pair, the bottom-left cell is a disabled space, everything else is
// normal. Overlay cells tagged "empty" produce no seat.
func GenerateSeats(showtimeID uuid.UUID, layout TheaterLayout) []Seat {
	seats := make([]Seat, 0, layout.Rows*layout.Columns)
	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Columns; c++ {
			var typ SeatType
			if layout.Overlay != nil {
				tag := overlayCell(layout.Overlay, r, c)
				if tag == LayoutCellEmpty {
					continue
				}
				typ = SeatType(tag)
			} else {
				typ = defaultSeatType(r, c, layout.Rows, layout.Columns)
			}
			seats = append(seats, Seat{
				ID:         uuid.New(),
				ShowtimeID: showtimeID,
				Row:        rowLabel(r),
				Column:     c + 1,
				Type:       typ,
				Status:     SeatAvailable,
			})
		}
	}
	return seats
}

func defaultSeatType(r, c, rows, cols int) SeatType {
	// Couple pair: very first and very last cell of the grid.
	if (r == 0 && c == 0) || (r == rows-1 && c == cols-1) {
		return SeatCouple
	}
	// Disabled space at the bottom-left, next to the accessible exit.
	if r == rows-1 && c == 0 {
		return SeatDisabled
	}
	if isMiddleRow(r, rows) {
		return SeatVIP
	}
	return SeatNormal
}

// isMiddleRow reports whether row r is one of the vip rows: the single
// middle row when the count is odd, the two middle rows when even.
func isMiddleRow(r, rows int) bool {
	if rows < 3 {
		return false
	}
	if rows%2 == 1 {
		return r == rows/2
	}
	return r == rows/2-1 || r == rows/2
}

func overlayCell(overlay [][]string, r, c int) string {
	if r >= len(overlay) || c >= len(overlay[r]) {
		return LayoutCellEmpty
	}
	return overlay[r][c]
}

// rowLabel converts a zero-based row index to its letter label,
// continuing with AA, AB, ... past Z.
func rowLabel(r int) string {
	label := ""
	for {
		label = string(rune('A'+r%26)) + label
		r = r/26 - 1
		if r < 0 {
			return label
		}
	}
}
