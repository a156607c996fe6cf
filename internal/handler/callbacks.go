package handler

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/export"
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// requestTimeout bounds storage writes made while handling one update
const requestTimeout = 10 * time.Second

const emptyCollectionText = "You have no words yet. Add some first."

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// If message is not modified, it was already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	action := callback.Unique
	if action == "" {
		action = data
	}

	switch action {
	case "learn", "next":
		return h.handleLearn(c)
	case "list":
		return h.handleList(c)
	case "add":
		return h.handleAdd(c)
	case "import":
		return h.handleImport(c)
	case "cancel":
		return h.handleCancel(c)
	case "back":
		return h.handleStart(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleLearn draws a fresh question and waits for the answer
func (h *Handler) handleLearn(c tele.Context) error {
	userID := c.Sender().ID

	session, err := h.wordService.NextQuestion()
	if errors.Is(err, domain.ErrEmptyCollection) {
		h.ResetState(userID)
		return h.reply(c, emptyCollectionText, mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to select question", zap.Error(err))
		return h.reply(c, "Something went wrong. Try again later.", backMarkup())
	}

	h.SetState(userID, &domain.StateData{
		State: domain.StateQuiz,
		Quiz:  session,
	})

	return h.reply(c, formatQuestion(session.Question), cancelMarkup())
}

// handleAnswer grades the user's answer for the current question
func (h *Handler) handleAnswer(c tele.Context, state *domain.StateData, answer string) error {
	userID := c.Sender().ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := h.wordService.Submit(ctx, state.Quiz, answer)
	switch {
	case errors.Is(err, domain.ErrAlreadyGraded):
		return c.Send("This question is already graded. Press Next for a new one.", nextMarkup())
	case errors.Is(err, domain.ErrStaleQuestion), errors.Is(err, domain.ErrNoActiveQuestion):
		h.logger.Warn("Discarding stale question", zap.Int64("user_id", userID), zap.Error(err))
		return h.handleLearn(c)
	case errors.Is(err, domain.ErrNotLoaded):
		return c.Send(storageUnavailableText, backMarkup())
	case err != nil:
		h.logger.Error("Failed to grade answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Could not save the result. Try again.", cancelMarkup())
	}

	return c.Send(formatResult(result), nextMarkup())
}

// handleList shows all words, most mastered first
func (h *Handler) handleList(c tele.Context) error {
	h.ResetState(c.Sender().ID)

	entries := h.wordService.List()
	if len(entries) == 0 {
		return h.reply(c, emptyCollectionText, mainMenuMarkup())
	}

	return h.reply(c, formatList(entries, service.Summarize(entries)), backMarkup())
}

// handleAdd starts the single word input flow
func (h *Handler) handleAdd(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})

	return h.reply(c,
		"➕ Send a pair as \"front, back\", or just the front and then the back.",
		cancelMarkup(),
	)
}

// handleImport waits for a multi-line bulk import message
func (h *Handler) handleImport(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingImport})

	return h.reply(c,
		"📥 Send word pairs, one per line:\nfront,back\nfront,back",
		cancelMarkup(),
	)
}

// handleExport sends the word list as a spreadsheet
func (h *Handler) handleExport(c tele.Context) error {
	entries := h.wordService.List()
	if len(entries) == 0 {
		return c.Send(emptyCollectionText)
	}

	buf, err := export.XLSX(entries)
	if err != nil {
		h.logger.Error("Failed to build export", zap.Error(err))
		return c.Send("Could not build the export. Try again later.")
	}

	doc := &tele.Document{
		File:     tele.FromReader(buf),
		FileName: "words.xlsx",
		Caption:  "📋 Your word list",
	}
	return c.Send(doc)
}
