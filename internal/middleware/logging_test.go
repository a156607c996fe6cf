package middleware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

func newTestContext(t *testing.T) tele.Context {
	t.Helper()

	bot, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)

	return bot.NewContext(tele.Update{
		ID: 7,
		Message: &tele.Message{
			Sender: &tele.User{ID: 42},
			Text:   "hello",
		},
	})
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name          string
		handlerErr    error
		expectedLevel string
		expectedMsg   string
	}{
		{
			name:          "success",
			handlerErr:    nil,
			expectedLevel: "debug",
			expectedMsg:   "Update handled",
		},
		{
			name:          "handler error",
			handlerErr:    fmt.Errorf("boom"),
			expectedLevel: "error",
			expectedMsg:   "Update handling failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			logger := zap.New(core)

			called := false
			h := Logging(logger)(func(c tele.Context) error {
				called = true
				return tt.handlerErr
			})

			err := h(newTestContext(t))

			assert.True(t, called)
			assert.Equal(t, tt.handlerErr, err)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level.String())
			assert.Equal(t, tt.expectedMsg, entries[0].Message)
			assert.Equal(t, int64(42), entries[0].ContextMap()["user_id"])
		})
	}
}
