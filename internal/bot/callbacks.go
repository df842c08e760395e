package bot

import (
	"fmt"

	"gopkg.in/telebot.v4"
)

// Callback button tags. The set is closed: any other tag answers with an
// alert instead of being dispatched.
const (
	callbackOK     = "ok"
	callbackDelete = "del"
)

// callbackHandler dispatches an incoming callback query through the handler
// table built in registerRoutes.
func (b *Bot) callbackHandler(tctx telebot.Context) error {
	callback := tctx.Callback()
	if callback == nil {
		return nil
	}

	handler, ok := b.callbacks[callback.Unique]
	if !ok {
		b.log.Warn("Unknown callback", "unique", callback.Unique, "sender", tctx.Sender().ID)
		return tctx.Respond(&telebot.CallbackResponse{
			Text:      "I don't know what to do with this button.",
			ShowAlert: true,
		})
	}

	return handler(tctx)
}

// okCallback acknowledges the button press without any further action.
func (b *Bot) okCallback(tctx telebot.Context) error {
	if err := tctx.Respond(&telebot.CallbackResponse{}); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}

	return nil
}

// deleteCallback removes the message the button is attached to.
func (b *Bot) deleteCallback(tctx telebot.Context) error {
	if err := tctx.Delete(); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return tctx.Respond(&telebot.CallbackResponse{})
}
