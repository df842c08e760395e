package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrEmptyToken = errors.New(
		"error getting TB_TELEGRAM_TOKEN: variable not specified or contains an empty string")
	ErrEmptyAPIHost = errors.New(
		"error getting TB_API_HOST: variable not specified or contains an empty string")
)

type Config struct {
	Env         string   // Env is the current environment: local, dev, prod.
	APIHost     string   // APIHost is the base URL of the upstream timetable API.
	StoragePath string   // StoragePath is the path to the sqlite database file.
	Groups      []string // Groups is the known universe of group names, optional.
	DevID       int64    // DevID is the chat id allowed to use dev commands, optional.
	MetricsAddr string   // MetricsAddr is the prometheus listen address, optional.
	Tg          Telegram
}

type Telegram struct {
	Token   string        // Token is an unique telegram bot token.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

// MustLoad loads the configuration from environment variables and returns a
// Config struct. It panics if a required variable is missing.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("TB")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")
	viper.SetDefault("STORAGE_PATH", "./timetable.db")

	if viper.GetString("TELEGRAM_TOKEN") == "" {
		panic(ErrEmptyToken)
	}

	if viper.GetString("API_HOST") == "" {
		panic(ErrEmptyAPIHost)
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		APIHost:     viper.GetString("API_HOST"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		Groups:      viper.GetStringSlice("GROUPS"),
		DevID:       viper.GetInt64("DEV_ID"),
		MetricsAddr: viper.GetString("METRICS_ADDR"),
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
	}
}
