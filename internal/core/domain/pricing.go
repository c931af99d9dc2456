package domain

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"
)

type StrategyCondition string

const (
	ConditionWeekday   StrategyCondition = "weekday"
	ConditionWeekend   StrategyCondition = "weekend"
	ConditionTime      StrategyCondition = "time"
	ConditionMovieType StrategyCondition = "movie_type"
	ConditionHoliday   StrategyCondition = "holiday"
)

// PricingStrategy is a conditional discount or surcharge from the
// pricing catalog, consumed read-only.
type PricingStrategy struct {
	ID                 int64
	ConditionType      StrategyCondition
	ConditionValue     string
	DiscountPercentage *float64
	ExtraCharge        *float64
	IsActive           bool
}

// Matches reports whether the strategy applies to the given showtime.
// ConditionValue formats: weekday/weekend take no value, time is an
// "HH-HH" hour range, movie_type is compared to the showtime's movie
// type, holiday is a "2006-01-02" date.
func (p *PricingStrategy) Matches(showtime *Showtime) bool {
	if !p.IsActive {
		return false
	}
	start := showtime.StartTime
	switch p.ConditionType {
	case ConditionWeekday:
		wd := start.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case ConditionWeekend:
		wd := start.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case ConditionTime:
		var from, to int
		if n, err := fmt.Sscanf(p.ConditionValue, "%d-%d", &from, &to); n != 2 || err != nil {
			return false
		}
		h := start.Hour()
		return h >= from && h < to
	case ConditionMovieType:
		return showtime.MovieType == p.ConditionValue
	case ConditionHoliday:
		return start.Format("2006-01-02") == p.ConditionValue
	default:
		return false
	}
}

// Fixed seat-type multipliers, applied before any strategy adjustment.
var seatTypeMultiplier = map[SeatType]float64{
	SeatVIP:      1.2,
	SeatDisabled: 0.6,
	SeatCouple:   1.0,
	SeatNormal:   1.0,
}

// SeatPrice computes the final price of one seat. Discounts of all
// matching strategies compound multiplicatively in ascending strategy
// id, then surcharges are added. The result is clamped at zero and
// rounded to two decimals.
func SeatPrice(basePrice float64, seatType SeatType, strategies []PricingStrategy) float64 {
	mult, ok := seatTypeMultiplier[seatType]
	if !ok {
		mult = 1.0
	}
	price := basePrice * mult

	sorted := make([]PricingStrategy, len(strategies))
	copy(sorted, strategies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, s := range sorted {
		if !s.IsActive || s.DiscountPercentage == nil {
			continue
		}
		price *= 1 - *s.DiscountPercentage/100
	}
	for _, s := range sorted {
		if !s.IsActive || s.ExtraCharge == nil {
			continue
		}
		price += *s.ExtraCharge
	}

	if price < 0 {
		log.Printf("pricing inconsistency: computed negative price %.2f (base=%.2f seat=%s), clamping to 0", price, basePrice, seatType)
		price = 0
	}
	return round2(price)
}

// OrderTotal sums the per-seat price with the order's single ticket
// type applied uniformly.
func OrderTotal(basePrice float64, seats []Seat, strategies []PricingStrategy) float64 {
	var total float64
	for i := range seats {
		total += SeatPrice(basePrice, seats[i].Type, strategies)
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
