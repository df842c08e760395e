package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Houeta/timetable-bot/internal/apiclient"
	"github.com/Houeta/timetable-bot/internal/format"
	"github.com/Houeta/timetable-bot/internal/models"
	"github.com/Houeta/timetable-bot/internal/repository"
	"github.com/Houeta/timetable-bot/pkg/metrics"
)

// sendBatchSize is how many sends are dispatched between pacing pauses, to
// stay under the messaging gateway's rate limits.
const (
	sendBatchSize = 25
	batchPause    = time.Second
)

// Gateway is the outbound messaging capability consumed by the fanout.
type Gateway interface {
	// Send delivers one HTML message body to a chat.
	Send(to int64, body string) error
}

// Interface is the notification fanout consumed by the poller.
type Interface interface {
	// Notify fans the changed groups of a snapshot out to all subscribed
	// recipients.
	Notify(ctx context.Context, snap *models.Snapshot, changes map[string]models.ChangeKind) error
}

// Notifier resolves subscribed recipients per changed group, renders one
// message body per group and dispatches sends concurrently.
type Notifier struct {
	log       *slog.Logger
	gateway   Gateway
	repo      repository.SettingsRepository
	api       apiclient.Interface
	batchSize int
	pause     time.Duration
}

// NewNotifier creates a new Notifier instance.
func NewNotifier(log *slog.Logger, gateway Gateway, repo repository.SettingsRepository, api apiclient.Interface) *Notifier {
	return &Notifier{
		log:       log,
		gateway:   gateway,
		repo:      repo,
		api:       api,
		batchSize: sendBatchSize,
		pause:     batchPause,
	}
}

// Notify implements the fanout algorithm. Only a failing settings query
// aborts the cycle; a single recipient's failure never affects delivery to
// the rest.
func (n *Notifier) Notify(ctx context.Context, snap *models.Snapshot, changes map[string]models.ChangeKind) error {
	const opn = "notifier.Notify"
	log := n.log.With("op", opn, "snapshot", snap.UID)

	notifiables, err := n.repo.Notifiables(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to query notifiables: %w", opn, err)
	}

	var wg sync.WaitGroup
	dispatched := 0

	for _, noty := range notifiables {
		kind, ok := changes[noty.Group]
		if !ok || kind == models.ChangeUnchanged || kind == models.ChangeUnknown {
			continue
		}

		body, err := n.renderBody(ctx, snap, noty.Group)
		if err != nil {
			log.ErrorContext(ctx, "Failed to render message body, skipping group",
				"group", noty.Group, "error", err)
			continue
		}

		for _, userID := range noty.UserIDs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if sendErr := n.gateway.Send(userID, body); sendErr != nil {
					log.WarnContext(ctx, "Failed to deliver notification",
						"recipient", userID, "group", noty.Group, "error", sendErr)
					metrics.RecordNotification("error")
					return
				}
				metrics.RecordNotification("ok")
			}()

			dispatched++
			if dispatched%n.batchSize == 0 {
				select {
				case <-time.After(n.pause):
				case <-ctx.Done():
				}
			}
		}
	}

	wg.Wait()
	metrics.RecordNotifyCycle()
	log.InfoContext(ctx, "Notification cycle complete", "dispatched", dispatched)

	return nil
}

// renderBody formats the group's live timetable, falling back to the default
// weekly template when the live snapshot lacks the group despite its change
// classification.
func (n *Notifier) renderBody(ctx context.Context, snap *models.Snapshot, group string) (string, error) {
	if g := snap.Group(group); g != nil {
		return format.Snapshot(g, snap.UID, snap.Date), nil
	}

	def, err := n.api.Default(ctx, group, snap.Date.Weekday())
	if err != nil {
		return "", fmt.Errorf("failed to get default timetable: %w", err)
	}

	return format.Default(def, snap.Date), nil
}
