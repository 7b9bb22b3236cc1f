package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/domain"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/metrics"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/store"
)

// Notifier delivers one scheduled BTC update (fetch data + send message).
// telegram.Router implements this.
type Notifier interface {
	Deliver(ctx context.Context, sub domain.Subscription) error
}

const dueBatchLimit = 100

// Scheduler periodically polls the store and dispatches due deliveries.
// Each due subscription is delivered in its own goroutine so one slow or
// failing chat does not delay the others.
type Scheduler struct {
	repo            store.Repo
	log             *zap.Logger
	notifier        Notifier
	clock           domain.Clock
	tick            time.Duration
	deliveryTimeout time.Duration
}

// New creates a Scheduler.
func New(repo store.Repo, log *zap.Logger, notifier Notifier, clock domain.Clock, tick, deliveryTimeout time.Duration) *Scheduler {
	if clock == nil {
		clock = domain.SystemClock()
	}
	return &Scheduler{
		repo:            repo,
		log:             log,
		notifier:        notifier,
		clock:           clock,
		tick:            tick,
		deliveryTimeout: deliveryTimeout,
	}
}

// Run starts the loop until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

// runTick performs one scheduling cycle: find due subscriptions, deliver
// concurrently, reschedule each.
func (s *Scheduler) runTick(ctx context.Context) {
	now := s.clock.Now()

	due, err := s.repo.ListDue(ctx, now, dueBatchLimit)
	if err != nil {
		s.log.Error("ListDue failed", zap.Error(err))
		return
	}

	var wg sync.WaitGroup
	for _, sub := range due {
		wg.Add(1)
		go func(sub domain.Subscription) {
			defer wg.Done()
			s.deliver(ctx, now, sub)
		}(sub)
	}
	wg.Wait()
}

// deliver sends one update and advances the schedule. A failed or timed-out
// delivery is rescheduled forward all the same; nothing here may kill the loop.
func (s *Scheduler) deliver(ctx context.Context, now time.Time, sub domain.Subscription) {
	dctx, cancel := context.WithTimeout(ctx, s.deliveryTimeout)
	defer cancel()

	// Run the delivery in its own goroutine and give up at the deadline even
	// if the notifier does not honor the context. A delivery stuck on a hung
	// connection must never pin the tick and stall every other chat.
	errCh := make(chan error, 1)
	go func() { errCh <- s.notifier.Deliver(dctx, sub) }()

	var err error
	select {
	case err = <-errCh:
	case <-dctx.Done():
		err = dctx.Err()
	}

	if err != nil {
		s.log.Error("delivery failed",
			zap.Error(err),
			zap.Int64("chatID", sub.ChatID),
			zap.String("currency", sub.Currency),
		)
		metrics.DeliveriesFailed.WithLabelValues(sub.Currency).Inc()
	} else {
		metrics.DeliveriesSent.WithLabelValues(sub.Currency).Inc()
	}

	// Advance off the previous fire time to keep the calendar cadence, and
	// keep advancing past "now" if the process slept through several cadences.
	next := domain.NextFire(sub.NextFireAt, sub.IntervalDays, sub.HourOfDay)
	for !next.After(now) {
		next = domain.NextFire(next, sub.IntervalDays, sub.HourOfDay)
	}

	// Reschedule is a no-op if the user stopped while this delivery was in
	// flight; the subscription must not come back.
	if err := s.repo.Reschedule(ctx, sub.ChatID, next); err != nil {
		s.log.Error("Reschedule failed", zap.Error(err), zap.Int64("chatID", sub.ChatID))
	}
}
