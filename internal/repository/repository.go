package repository

import (
	"context"
	"errors"

	"github.com/Houeta/timetable-bot/internal/models"
)

// ErrSettingsNotFound is returned when no settings row exists for a chat.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository is the narrow contract over the per-chat settings store.
type SettingsRepository interface {
	// GetOrCreate returns the settings for a chat, creating a fresh record on
	// first interaction.
	GetOrCreate(ctx context.Context, id int64) (*models.Settings, error)
	// Update persists a mutated settings record.
	Update(ctx context.Context, settings *models.Settings) error
	// Delete removes a chat's settings record.
	Delete(ctx context.Context, id int64) error
	// Notifiables returns all notification-enabled chats grouped by their
	// timetable group.
	Notifiables(ctx context.Context) ([]models.Notifiable, error)
}
