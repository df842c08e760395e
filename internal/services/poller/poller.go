package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/timetable-bot/internal/apiclient"
	"github.com/Houeta/timetable-bot/internal/models"
	"github.com/Houeta/timetable-bot/internal/services/detector"
	"github.com/Houeta/timetable-bot/internal/services/notifier"
	"github.com/Houeta/timetable-bot/pkg/metrics"
)

const (
	// minWait and maxWait clamp the inter-poll sleep so that a bad upstream
	// next_update timestamp can neither busy-loop nor stall the loop.
	minWait = 10 * time.Second
	maxWait = 24 * time.Hour

	// failureBackoff is slept after a failed poll request before retrying.
	failureBackoff = 10 * time.Second

	// nightHour is the local hour before which polling is quiescent.
	nightHour = 6
)

// Poller drives the change-detection pipeline: it decides when to poll,
// feeds poll results to the detector and triggers the notification fanout.
// The previous poll baseline is owned exclusively by the Poller; ticks never
// overlap.
type Poller struct {
	log      *slog.Logger
	api      apiclient.Interface
	notifier notifier.Interface
	detector *detector.Detector

	prev *models.Poll

	// overridable in tests
	now     func() time.Time
	minWait time.Duration
	maxWait time.Duration
	backoff time.Duration
}

// NewPoller creates a new Poller instance.
func NewPoller(log *slog.Logger, api apiclient.Interface, ntf notifier.Interface, det *detector.Detector) *Poller {
	return &Poller{
		log:      log,
		api:      api,
		notifier: ntf,
		detector: det,
		now:      time.Now,
		minWait:  minWait,
		maxWait:  maxWait,
		backoff:  failureBackoff,
	}
}

// Run executes the polling loop until the context is canceled. The first
// poll seeds the change-detection baseline; its failure is a startup error
// (fail-fast), while every later failure is retried after a short backoff.
func (p *Poller) Run(ctx context.Context) error {
	const opn = "poller.Run"
	log := p.log.With("op", opn)

	if p.prev == nil {
		first, err := p.api.Poll(ctx)
		if err != nil {
			return fmt.Errorf("%s: initial poll failed: %w", opn, err)
		}
		p.prev = first
		log.InfoContext(ctx, "Initial poll complete", "next_update", first.NextUpdate)
	}

	for {
		if err := p.wait(ctx); err != nil {
			return err
		}

		poll, err := p.api.Poll(ctx)
		if err != nil {
			log.ErrorContext(ctx, "Poll request failed", "error", err)
			metrics.RecordPoll("error")
			// prev is kept as-is so the change is re-detected next time
			if err = sleepCtx(ctx, p.backoff); err != nil {
				return err
			}
			continue
		}
		metrics.RecordPoll("ok")

		p.processHorizon(ctx, models.FetchToday, p.prev.Today, poll.Today)
		p.processHorizon(ctx, models.FetchNext, p.prev.Next, poll.Next)

		// Advance the baseline on poll success regardless of snapshot or
		// notify outcome: delivery is at-most-once.
		p.prev = poll
	}
}

// processHorizon classifies one horizon's changes and, when warranted,
// fetches the full snapshot and triggers the fanout. Failures are logged
// and the horizon is skipped for this cycle; the loop itself never stops.
func (p *Poller) processHorizon(ctx context.Context, horizon models.Fetch, prev, cur *models.ChangeSet) {
	if cur == nil || cur.UID == "" {
		// no schedule published for this horizon
		return
	}

	changes := p.detector.Detect(cur.Groups, prev)
	if !detector.HasUpdates(changes) {
		return
	}

	log := p.log.With("horizon", horizon, "uid", cur.UID)
	log.InfoContext(ctx, "Timetable changed, fetching snapshot")

	snap, err := p.api.Snapshot(ctx, cur.UID)
	if err != nil {
		log.ErrorContext(ctx, "Snapshot fetch failed, skipping notification", "error", err)
		metrics.RecordSnapshotFetch("error")
		return
	}
	metrics.RecordSnapshotFetch("ok")

	if err = p.notifier.Notify(ctx, snap, changes); err != nil {
		log.ErrorContext(ctx, "Notification cycle failed", "error", err)
	}
}

// wait sleeps until the next poll is due: before nightHour it targets that
// hour, otherwise the upstream's announced next_update clamped to
// [minWait, maxWait].
func (p *Poller) wait(ctx context.Context) error {
	dur := p.waitDuration(p.now())
	p.log.DebugContext(ctx, "Waiting for next poll", "duration", dur)

	return sleepCtx(ctx, dur)
}

func (p *Poller) waitDuration(now time.Time) time.Duration {
	night := time.Date(now.Year(), now.Month(), now.Day(), nightHour, 0, 0, 0, now.Location())
	if now.Before(night) {
		return night.Sub(now)
	}

	dur := p.prev.NextUpdate.Sub(now)
	if dur < p.minWait {
		return p.minWait
	}
	if dur > p.maxWait {
		return p.maxWait
	}

	return dur
}

// sleepCtx sleeps for the duration or until the context is canceled.
func sleepCtx(ctx context.Context, dur time.Duration) error {
	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
