package handler

import (
	"memorizer/internal/domain"
	"memorizer/internal/i18n"
	"memorizer/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(i18n.T(h.lang(c), i18n.GenericError))
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(i18n.T(h.lang(c), i18n.GenericError))
	}

	h.endQuiz(userID)

	if !authorized {
		// New users get the language of their Telegram client
		lang, err := h.settingsService.SetLanguage(userID, string(i18n.Match(c.Sender().LanguageCode)))
		if err != nil {
			h.logger.Warn("Failed to save client language", zap.Error(err))
			lang = h.lang(c)
		}
		c.Set(middleware.LanguageKey, lang)

		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send(i18n.T(lang, i18n.AskPassword))
	}

	h.ResetState(userID)
	lang := h.lang(c)
	return c.Send(i18n.T(lang, i18n.MainMenu), mainMenuMarkup(lang))
}

// handleListsCommand handles /lists command
func (h *Handler) handleListsCommand(c tele.Context) error {
	h.endQuiz(c.Sender().ID)
	h.ResetState(c.Sender().ID)
	return h.showLists(c, 1)
}

// handleSettingsCommand handles /settings command
func (h *Handler) handleSettingsCommand(c tele.Context) error {
	h.endQuiz(c.Sender().ID)
	h.ResetState(c.Sender().ID)
	return h.showSettings(c)
}
