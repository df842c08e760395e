package bot

import (
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/Houeta/timetable-bot/internal/apiclient"
	"github.com/Houeta/timetable-bot/internal/repository"
)

// Bot contains the bot API instance and other information.
type Bot struct {
	bot       API
	log       *slog.Logger
	repo      repository.SettingsRepository
	api       apiclient.Interface
	devID     int64
	callbacks map[string]telebot.HandlerFunc
}

func NewBot(
	log *slog.Logger,
	token string,
	poller time.Duration,
	repo repository.SettingsRepository,
	api apiclient.Interface,
	devID int64,
) (*Bot, error) {
	tgbot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", tgbot.Me.Username)

	botInstance := &Bot{bot: tgbot, log: log, repo: repo, api: api, devID: devID}

	botInstance.registerRoutes()

	return botInstance, nil
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// Send delivers one HTML message body to a chat. It implements the notifier
// gateway.
func (b *Bot) Send(to int64, body string) error {
	_, err := b.bot.Send(&telebot.User{ID: to}, body, &telebot.SendOptions{
		ParseMode:             telebot.ModeHTML,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to %d: %w", to, err)
	}

	return nil
}

// registerRoutes configures all routes (commands and callbacks).
func (b *Bot) registerRoutes() {
	// Public routes.
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/today", b.todayHandler)
	b.bot.Handle("/next", b.nextHandler)
	b.bot.Handle("/default_today", b.defaultTodayHandler)
	b.bot.Handle("/default_next", b.defaultNextHandler)
	b.bot.Handle("/set_group", b.setGroupHandler)
	b.bot.Handle("/toggle_notifications", b.toggleNotificationsHandler)
	b.bot.Handle("/snapshot", b.snapshotHandler)
	b.bot.Handle("/about", b.aboutHandler)

	// Dev routes.
	b.bot.Handle("/notifiables", b.notifiablesHandler)

	// Callback buttons are dispatched through a closed handler table keyed
	// by the button's unique tag.
	b.callbacks = map[string]telebot.HandlerFunc{
		callbackOK:     b.okCallback,
		callbackDelete: b.deleteCallback,
	}
	b.bot.Handle(telebot.OnCallback, b.callbackHandler)
}
