package handler

import (
	"strings"

	"memorizer/internal/domain"
	"memorizer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Unknown commands are ignored
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(i18n.T(h.lang(c), i18n.GenericError))
	}

	if !authorized {
		return h.handlePassword(c, text)
	}

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingListName:
		return h.createList(c, text)
	case domain.StateWaitingRename:
		return h.renameList(c, state.ListID, text)
	case domain.StateWaitingWord:
		return h.receiveWord(c, state.ListID, text)
	case domain.StateWaitingMeaning:
		return h.receiveMeaning(c, state, text)
	case domain.StateWaitingEditWord:
		return h.updateWord(c, state.WordID, text, false)
	case domain.StateWaitingEditMeaning:
		return h.updateWord(c, state.WordID, text, true)
	case domain.StateWaitingReminderTime:
		return h.setReminderTime(c, text)
	case domain.StateQuizAnswer:
		return h.quizAnswer(c, text)
	default:
		lang := h.lang(c)
		return c.Send(i18n.T(lang, i18n.MainMenu), mainMenuMarkup(lang))
	}
}

// handlePassword checks a password sent by an unauthorized user
func (h *Handler) handlePassword(c tele.Context, password string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	if !h.authService.CheckPassword(password) {
		return c.Send(i18n.T(lang, i18n.WrongPassword))
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(i18n.T(lang, i18n.GenericError))
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send(
		i18n.T(lang, i18n.AccessGranted)+"\n\n"+i18n.T(lang, i18n.MainMenu),
		mainMenuMarkup(lang),
	)
}
