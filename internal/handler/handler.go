package handler

import (
	"sync"

	"memorizer/internal/domain"
	"memorizer/internal/middleware"
	"memorizer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	authService     *service.AuthService
	listService     *service.ListService
	wordService     *service.WordService
	quizService     *service.QuizService
	settingsService *service.SettingsService
	logger          *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Active quiz sessions, one per user
	quizzes map[int64]*quizEntry
	quizMux sync.Mutex

	// Serializes callbacks of a single user
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

type quizEntry struct {
	session  *domain.QuizSession
	listName string
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	listService *service.ListService,
	wordService *service.WordService,
	quizService *service.QuizService,
	settingsService *service.SettingsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		authService:     authService,
		listService:     listService,
		wordService:     wordService,
		quizService:     quizService,
		settingsService: settingsService,
		logger:          logger,
		states:          make(map[int64]*domain.StateData),
		quizzes:         make(map[int64]*quizEntry),
		callbackLocks:   make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/lists", h.handleListsCommand)
	h.bot.Handle("/settings", h.handleSettingsCommand)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// All inline buttons carry dynamic data and are routed by prefix
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

// userLock returns the mutex serializing callbacks of one user
func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.callbackMux.Lock()
	defer h.callbackMux.Unlock()

	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	return lock
}

// lang returns the interface language of the sender. The auth middleware
// stores it in the context; outside of it the settings are loaded.
func (h *Handler) lang(c tele.Context) domain.Language {
	if lang, ok := middleware.Language(c); ok {
		return lang
	}

	settings, err := h.settingsService.Get(c.Sender().ID)
	if err != nil {
		h.logger.Warn("Failed to load language, using default",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return domain.LanguageEnglish
	}

	c.Set(middleware.LanguageKey, settings.Language)
	return settings.Language
}
