package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

const defaultSweepSchedule = "@every 1m"

// ExpirySweeper periodically cancels PENDING orders whose payment
// window elapsed, so abandoned checkouts never hold seats indefinitely.
// Each pass is idempotent; overlapping or redundant runs are harmless.
type ExpirySweeper struct {
	svc      *OrderService
	schedule string
	cron     *cron.Cron
}

func NewExpirySweeper(svc *OrderService, schedule string) *ExpirySweeper {
	if schedule == "" {
		schedule = defaultSweepSchedule
	}
	return &ExpirySweeper{svc: svc, schedule: schedule}
}

func (w *ExpirySweeper) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.schedule, func() { w.Sweep(context.Background()) }); err != nil {
		return err
	}
	w.cron.Start()
	log.Printf("expiry sweeper started (schedule %q)", w.schedule)
	return nil
}

func (w *ExpirySweeper) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// Sweep runs one pass. Exposed so callers can trigger it lazily on
// read paths as well as on the schedule.
func (w *ExpirySweeper) Sweep(ctx context.Context) {
	cutoff := w.svc.now().Add(-w.svc.paymentWindow)
	ids, err := w.svc.orders.ListExpiredPending(ctx, cutoff)
	if err != nil {
		log.Printf("list expired pending orders: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	log.Printf("found %d unpaid orders past the payment window, cancelling", len(ids))
	for _, id := range ids {
		if _, err := w.svc.ExpireIfUnpaid(ctx, id); err != nil {
			log.Printf("expire order %s: %v", id, err)
		}
	}
}
