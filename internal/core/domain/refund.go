package domain

import (
	"sort"
	"time"
)

// RefundTier grants a fraction of the order total back when the refund
// happens at least MinLead before the showtime starts.
type RefundTier struct {
	MinLead time.Duration
	Percent float64
}

// RefundPolicy is the configurable tier table. The exact cutoffs are a
// business input, not something this engine invents.
type RefundPolicy struct {
	Tiers []RefundTier
}

// DefaultRefundPolicy: full refund up to two hours before the show,
// half refund up to one hour before, nothing after that.
func DefaultRefundPolicy() RefundPolicy {
	return RefundPolicy{Tiers: []RefundTier{
		{MinLead: 2 * time.Hour, Percent: 1.0},
		{MinLead: 1 * time.Hour, Percent: 0.5},
	}}
}

// Amount returns the refundable amount for a refund requested lead
// before the showtime start. ok is false when no tier applies.
func (p RefundPolicy) Amount(lead time.Duration, total float64) (float64, bool) {
	tiers := make([]RefundTier, len(p.Tiers))
	copy(tiers, p.Tiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinLead > tiers[j].MinLead })
	for _, t := range tiers {
		if lead >= t.MinLead {
			return round2(total * t.Percent), true
		}
	}
	return 0, false
}
