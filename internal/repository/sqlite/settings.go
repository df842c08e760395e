package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/timetable-bot/internal/models"
	"github.com/Houeta/timetable-bot/internal/repository"
)

// GetOrCreate returns the settings row for a chat, inserting a fresh record
// with notifications disabled when the chat is seen for the first time.
func (r *Repository) GetOrCreate(ctx context.Context, id int64) (*models.Settings, error) {
	const opn = "repository.sqlite.GetOrCreate"

	settings, err := r.getSettings(ctx, id)
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, fmt.Errorf("%s: failed to get settings: %w", opn, err)
	}

	fresh := &models.Settings{ID: id, Joined: time.Now().UTC()}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO settings (id, group_name, teacher, notify, joined) VALUES (?, ?, ?, ?, ?)",
		fresh.ID, fresh.Group, fresh.Teacher, fresh.IsNotificationsEnabled, fresh.Joined)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to insert settings: %w", opn, err)
	}

	r.log.InfoContext(ctx, "Created settings for new chat", "id", id)

	return fresh, nil
}

// Update persists a mutated settings record.
func (r *Repository) Update(ctx context.Context, settings *models.Settings) error {
	const opn = "repository.sqlite.Update"

	_, err := r.db.ExecContext(ctx,
		"UPDATE settings SET group_name = ?, teacher = ?, notify = ? WHERE id = ?",
		settings.Group, settings.Teacher, settings.IsNotificationsEnabled, settings.ID)
	if err != nil {
		return fmt.Errorf("%s: failed to update settings for %d: %w", opn, settings.ID, err)
	}

	return nil
}

// Delete removes a chat's settings record.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	const opn = "repository.sqlite.Delete"

	_, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

// Notifiables returns all notification-enabled chats grouped by timetable
// group. Chats without a group assignment are skipped.
func (r *Repository) Notifiables(ctx context.Context) ([]models.Notifiable, error) {
	const opn = "repository.sqlite.Notifiables"

	rows, err := r.db.QueryContext(ctx,
		"SELECT group_name, id FROM settings WHERE notify = 1 AND group_name <> '' ORDER BY group_name, id")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query notifiables: %w", opn, err)
	}
	defer rows.Close()

	var notifiables []models.Notifiable
	for rows.Next() {
		var (
			group string
			id    int64
		)
		if err = rows.Scan(&group, &id); err != nil {
			return nil, fmt.Errorf("%s: failed to scan notifiable: %w", opn, err)
		}

		// Rows arrive ordered by group, so each group forms one contiguous run.
		if len(notifiables) == 0 || notifiables[len(notifiables)-1].Group != group {
			notifiables = append(notifiables, models.Notifiable{Group: group})
		}
		last := &notifiables[len(notifiables)-1]
		last.UserIDs = append(last.UserIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return notifiables, nil
}

func (r *Repository) getSettings(ctx context.Context, id int64) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.QueryRowContext(ctx,
		"SELECT id, group_name, teacher, notify, joined FROM settings WHERE id = ?", id).
		Scan(&settings.ID, &settings.Group, &settings.Teacher, &settings.IsNotificationsEnabled, &settings.Joined)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, err
	}

	return &settings, nil
}
