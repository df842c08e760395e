package bot

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"

	"github.com/Houeta/timetable-bot/test/mocks"
)

func TestStart(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockBot.On("Start").Once()

	logger := slog.Default()
	testBot := Bot{bot: mockBot, log: logger}

	testBot.Start()

	mockBot.AssertExpectations(t)
}

func TestStop(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockBot.On("Stop").Once()

	logger := slog.Default()
	testBot := Bot{bot: mockBot, log: logger}

	testBot.Stop()

	mockBot.AssertExpectations(t)
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)

	commands := []string{
		"/start",
		"/today",
		"/next",
		"/default_today",
		"/default_next",
		"/set_group",
		"/toggle_notifications",
		"/snapshot",
		"/about",
		"/notifiables",
	}
	for _, cmd := range commands {
		mockBot.On("Handle", cmd, mock.AnythingOfType("telebot.HandlerFunc")).Once()
	}
	mockBot.On("Handle", telebot.OnCallback, mock.AnythingOfType("telebot.HandlerFunc")).Once()

	logger := slog.Default()
	testBot := Bot{bot: mockBot, log: logger}

	testBot.registerRoutes()

	assert.Contains(t, testBot.callbacks, callbackOK)
	assert.Contains(t, testBot.callbacks, callbackDelete)
	mockBot.AssertExpectations(t)
}

func TestSend(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockBot.On("Send", &telebot.User{ID: 42}, "schedule body", mock.AnythingOfType("*telebot.SendOptions")).
		Return(&telebot.Message{}, nil).Once()

	testBot := Bot{bot: mockBot, log: slog.Default()}

	err := testBot.Send(42, "schedule body")

	require.NoError(t, err)
	mockBot.AssertExpectations(t)
}

func TestSend_Error(t *testing.T) {
	t.Parallel()

	mockBot := mocks.NewAPI(t)
	mockBot.On("Send", &telebot.User{ID: 42}, "schedule body", mock.AnythingOfType("*telebot.SendOptions")).
		Return(nil, errors.New("forbidden: bot was blocked by the user")).Once()

	testBot := Bot{bot: mockBot, log: slog.Default()}

	err := testBot.Send(42, "schedule body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send message to 42")
	mockBot.AssertExpectations(t)
}
