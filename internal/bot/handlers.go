package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/Houeta/timetable-bot/internal/apiclient"
	"github.com/Houeta/timetable-bot/internal/format"
	"github.com/Houeta/timetable-bot/internal/models"
)

const maxGroupNameLen = 10

var htmlOpts = &telebot.SendOptions{
	ParseMode:             telebot.ModeHTML,
	DisableWebPagePreview: true,
}

// startHandler process command /start.
func (b *Bot) startHandler(tctx telebot.Context) error {
	b.log.Info("User started the bot", "username", tctx.Sender().Username)

	if _, err := b.repo.GetOrCreate(context.Background(), tctx.Chat().ID); err != nil {
		return fmt.Errorf("failed to init settings: %w", err)
	}

	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("Got it", callbackDelete)))

	msg := "Hello! I deliver timetable updates.\n\n" +
		"Set your group first:\n<code>/set_group [group]</code>\n\n" +
		"Then /today and /next show the current timetable, and " +
		"/toggle_notifications subscribes you to updates."
	if err := tctx.Send(msg, htmlOpts, markup); err != nil {
		return fmt.Errorf("failed to send greeting message: %w", err)
	}

	return nil
}

// todayHandler process command /today.
func (b *Bot) todayHandler(tctx telebot.Context) error {
	return b.sendTimetable(tctx, models.FetchToday)
}

// nextHandler process command /next.
func (b *Bot) nextHandler(tctx telebot.Context) error {
	return b.sendTimetable(tctx, models.FetchNext)
}

// sendTimetable replies with the latest timetable of the sender's group for
// the given horizon, falling back to the default weekly template when the
// live snapshot lacks the group.
func (b *Bot) sendTimetable(tctx telebot.Context, fetch models.Fetch) error {
	ctx := context.Background()

	settings, err := b.repo.GetOrCreate(ctx, tctx.Chat().ID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.Group == "" {
		return tctx.Send("You have no group set. Use <code>/set_group [group]</code> first.", htmlOpts)
	}

	snap, err := b.api.Latest(ctx, fetch)
	if err != nil {
		return b.replyAPIError(tctx, err)
	}

	var body string
	if group := snap.Group(settings.Group); group != nil {
		body = format.Snapshot(group, snap.UID, snap.Date)
	} else {
		def, defErr := b.api.Default(ctx, settings.Group, snap.Date.Weekday())
		if defErr != nil {
			return b.replyAPIError(tctx, defErr)
		}
		body = format.Default(def, snap.Date)
	}

	if err = tctx.Send(body, htmlOpts); err != nil {
		return fmt.Errorf("failed to send timetable: %w", err)
	}

	return nil
}

// defaultTodayHandler process command /default_today.
func (b *Bot) defaultTodayHandler(tctx telebot.Context) error {
	return b.sendDefault(tctx, time.Now())
}

// defaultNextHandler process command /default_next.
func (b *Bot) defaultNextHandler(tctx telebot.Context) error {
	return b.sendDefault(tctx, nextSchoolDay(time.Now()))
}

func (b *Bot) sendDefault(tctx telebot.Context, date time.Time) error {
	ctx := context.Background()

	settings, err := b.repo.GetOrCreate(ctx, tctx.Chat().ID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.Group == "" {
		return tctx.Send("You have no group set. Use <code>/set_group [group]</code> first.", htmlOpts)
	}

	def, err := b.api.Default(ctx, settings.Group, date.Weekday())
	if err != nil {
		return b.replyAPIError(tctx, err)
	}

	if err = tctx.Send(format.Default(def, date), htmlOpts); err != nil {
		return fmt.Errorf("failed to send default timetable: %w", err)
	}

	return nil
}

// setGroupHandler process command /set_group. Picking a group also enables
// notifications for it.
func (b *Bot) setGroupHandler(tctx telebot.Context) error {
	ctx := context.Background()

	group := tctx.Message().Payload
	if group == "" || len(group) > maxGroupNameLen {
		return tctx.Send(
			"Usage:\n<code>/set_group [group]</code>\nExample:\n<code>/set_group M1-21</code>", htmlOpts)
	}

	settings, err := b.repo.GetOrCreate(ctx, tctx.Chat().ID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	settings.Group = group
	settings.IsNotificationsEnabled = true
	if err = b.repo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	if err = tctx.Send(fmt.Sprintf("Your group is now <code>%s</code>.", group), htmlOpts); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	return nil
}

// toggleNotificationsHandler process command /toggle_notifications.
func (b *Bot) toggleNotificationsHandler(tctx telebot.Context) error {
	ctx := context.Background()

	settings, err := b.repo.GetOrCreate(ctx, tctx.Chat().ID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	settings.IsNotificationsEnabled = !settings.IsNotificationsEnabled
	if err = b.repo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	msg := "Notifications are now <b>off</b>."
	if settings.IsNotificationsEnabled {
		msg = "Notifications are now <b>on</b>."
	}

	if err = tctx.Send(msg, htmlOpts); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	return nil
}

// snapshotHandler process command /snapshot [uid].
func (b *Bot) snapshotHandler(tctx telebot.Context) error {
	ctx := context.Background()

	uid := tctx.Message().Payload
	if uid == "" {
		return tctx.Send("Usage:\n<code>/snapshot [uid]</code>", htmlOpts)
	}

	settings, err := b.repo.GetOrCreate(ctx, tctx.Chat().ID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	snap, err := b.api.Snapshot(ctx, uid)
	if err != nil {
		return b.replyAPIError(tctx, err)
	}

	group := snap.Group(settings.Group)
	if group == nil {
		return tctx.Send(
			fmt.Sprintf("Snapshot <code>%s</code> has no timetable for your group.", snap.UID), htmlOpts)
	}

	if err = tctx.Send(format.Snapshot(group, snap.UID, snap.Date), htmlOpts); err != nil {
		return fmt.Errorf("failed to send snapshot: %w", err)
	}

	return nil
}

// aboutHandler process command /about.
func (b *Bot) aboutHandler(tctx telebot.Context) error {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL("Source", "https://github.com/Houeta/timetable-bot")))

	if err := tctx.Send("<b>Timetable bot</b>\n\nDelivers schedule updates as they are published.",
		htmlOpts, markup); err != nil {
		return fmt.Errorf("failed to send about message: %w", err)
	}

	return nil
}

// notifiablesHandler process dev command /notifiables: dumps the current
// fanout targets. Silently ignored for everyone but the configured dev chat.
func (b *Bot) notifiablesHandler(tctx telebot.Context) error {
	if b.devID == 0 || tctx.Sender().ID != b.devID {
		b.log.Warn("Unauthorized dev command", "command", "/notifiables", "sender", tctx.Sender().ID)
		return nil
	}

	notifiables, err := b.repo.Notifiables(context.Background())
	if err != nil {
		return fmt.Errorf("failed to query notifiables: %w", err)
	}

	return tctx.Send(fmt.Sprintf("%+v", notifiables))
}

// replyAPIError surfaces an upstream error to the user in a readable form.
func (b *Bot) replyAPIError(tctx telebot.Context, err error) error {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return tctx.Send(
			fmt.Sprintf("Upstream API error.\nCause: %s\nDescription: %s", apiErr.Cause, apiErr.Desc))
	}

	return err
}

// nextSchoolDay returns tomorrow, skipping over Sunday.
func nextSchoolDay(now time.Time) time.Time {
	next := now.AddDate(0, 0, 1)
	if next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}

	return next
}
