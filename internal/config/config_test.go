package config_test

import (
	"testing"
	"time"

	"github.com/Houeta/timetable-bot/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad(t *testing.T) {
	t.Run("error - empty telegram token", func(t *testing.T) {
		t.Setenv("TB_TELEGRAM_TOKEN", "")
		t.Setenv("TB_API_HOST", "https://api.example.com")

		assert.PanicsWithError(t, config.ErrEmptyToken.Error(), func() {
			config.MustLoad()
		})
	})

	t.Run("error - empty api host", func(t *testing.T) {
		t.Setenv("TB_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("TB_API_HOST", "")

		assert.PanicsWithError(t, config.ErrEmptyAPIHost.Error(), func() {
			config.MustLoad()
		})
	})

	t.Run("success", func(t *testing.T) {
		t.Setenv("TB_ENV", "local")
		t.Setenv("TB_TELEGRAM_TOKEN", "telegramToken")
		t.Setenv("TB_API_HOST", "https://api.example.com")
		t.Setenv("TB_STORAGE_PATH", "some/path/to/db")
		t.Setenv("TB_GROUPS", "M1 M2 IR3-21")
		t.Setenv("TB_DEV_ID", "42")

		cfg := config.MustLoad()

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, 15*time.Second, cfg.Tg.Timeout)
		assert.Equal(t, "telegramToken", cfg.Tg.Token)
		assert.Equal(t, "https://api.example.com", cfg.APIHost)
		assert.Equal(t, "some/path/to/db", cfg.StoragePath)
		assert.Equal(t, []string{"M1", "M2", "IR3-21"}, cfg.Groups)
		assert.Equal(t, int64(42), cfg.DevID)
	})
}
