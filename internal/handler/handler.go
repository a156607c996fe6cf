package handler

import (
	"sync"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	wordService *service.WordService
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		wordService: wordService,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/learn", h.handleLearn)
	h.bot.Handle("/list", h.handleList)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/import", h.handleImport)
	h.bot.Handle("/export", h.handleExport)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLearn, h.handleLearn)
	h.bot.Handle(&btnNext, h.handleLearn)
	h.bot.Handle(&btnList, h.handleList)
	h.bot.Handle(&btnAdd, h.handleAdd)
	h.bot.Handle(&btnImport, h.handleImport)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnBack, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnLearn = tele.Btn{
		Unique: "learn",
		Text:   "📝 Learn",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️ Next",
	}
	btnList = tele.Btn{
		Unique: "list",
		Text:   "📋 Word list",
	}
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "➕ Add words",
	}
	btnImport = tele.Btn{
		Unique: "import",
		Text:   "📥 Bulk import",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Back",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLearn),
		menu.Row(btnList),
		menu.Row(btnAdd, btnImport),
	)
	return menu
}

func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

func nextMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnNext),
		markup.Row(btnBack),
	)
	return markup
}

func backMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBack))
	return markup
}
