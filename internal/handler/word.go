package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore unknown commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateQuiz:
		return h.handleAnswer(c, state, text)

	case domain.StateWaitingWord:
		if strings.Contains(text, ",") {
			rec, ok := service.ParseLine(text)
			if !ok {
				return c.Send("Expected exactly two non-empty parts: front, back", cancelMarkup())
			}
			return h.saveWord(c, rec.Front, rec.Back)
		}

		h.SetState(userID, &domain.StateData{
			State:        domain.StateWaitingBack,
			CurrentFront: text,
		})
		return c.Send("Now send the back", cancelMarkup())

	case domain.StateWaitingBack:
		return h.saveWord(c, state.CurrentFront, text)

	case domain.StateWaitingImport:
		return h.importWords(c, text)

	default:
		return c.Send(mainMenuText, mainMenuMarkup())
	}
}

// saveWord appends one pair and waits for the next
func (h *Handler) saveWord(c tele.Context, front, back string) error {
	userID := c.Sender().ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	w, err := h.wordService.Append(ctx, front, back)
	if errors.Is(err, domain.ErrValidation) {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
		return c.Send("Both front and back are required. Send the pair again.", cancelMarkup())
	}
	if errors.Is(err, domain.ErrNotLoaded) {
		return c.Send(storageUnavailableText, backMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to save word pair",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Could not save the word. Try again.", cancelMarkup())
	}

	// Reset to waiting for next word
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})

	return c.Send(fmt.Sprintf("✅ Saved: %s — %s\n\nSend the next word or go back with /start", w.Front, w.Back), cancelMarkup())
}

// importWords runs a bulk import and reports the counts
func (h *Handler) importWords(c tele.Context, raw string) error {
	userID := c.Sender().ID

	if raw == "" {
		return c.Send("Nothing entered. Send at least one line: front,back", cancelMarkup())
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := h.wordService.Import(ctx, raw)
	if errors.Is(err, domain.ErrNoValidData) {
		msg := fmt.Sprintf("No valid lines found. Rejected lines: %d\nUse one pair per line: front,back", result.Rejected)
		return c.Send(msg, cancelMarkup())
	}
	if errors.Is(err, domain.ErrNotLoaded) {
		return c.Send(storageUnavailableText, backMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to import words",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Could not save the import. Try again.", cancelMarkup())
	}

	h.logger.Info("Bulk import completed",
		zap.Int64("user_id", userID),
		zap.Int("added", len(result.Records)),
		zap.Int("rejected", result.Rejected),
	)

	h.ResetState(userID)
	return c.Send(formatImport(result), mainMenuMarkup())
}
