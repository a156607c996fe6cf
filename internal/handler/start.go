package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	mainMenuText           = "🏠 Main menu\n\nChoose an action:"
	storageUnavailableText = "⚠️ Saved words could not be read, so changes are paused to protect them. Try again later."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened main menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)
	return h.reply(c, mainMenuText, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.reply(c, mainMenuText, mainMenuMarkup())
}

// reply edits the message when answering a callback, sends a new one otherwise
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
