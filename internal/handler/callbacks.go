package handler

import (
	"strconv"
	"strings"
	"unicode"

	"memorizer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

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

	// Already edited by another callback, nothing to send
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
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// render edits the pressed message in place, or sends a new message for
// commands and text input. A non-empty notice is shown as a callback toast.
func (h *Handler) render(c tele.Context, text string, markup *tele.ReplyMarkup, notice ...string) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}

	resp := &tele.CallbackResponse{}
	if len(notice) > 0 {
		resp.Text = notice[0]
	}
	return c.Respond(resp)
}

// alert shows text as a popup for callbacks or as a message otherwise
func (h *Handler) alert(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// isQuizAction reports whether the action operates on the active quiz
func isQuizAction(action string) bool {
	switch action {
	case actMode, actShow, actSkip, actNext, actRetry, actStop:
		return true
	}
	return false
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID
	action, args := parseCallback(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("action", action),
		zap.Strings("args", args),
		zap.String("id", callback.ID),
		zap.Int64("user_id", userID),
	)

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	// Leaving the quiz screen ends the quiz and any pending text input
	if !isQuizAction(action) {
		h.endQuiz(userID)
		h.ResetState(userID)
	}

	lang := h.lang(c)

	switch action {
	case actMenu, actCancel:
		return h.render(c, i18n.T(lang, i18n.MainMenu), mainMenuMarkup(lang))
	case actLists:
		return h.showLists(c, 1)
	case actPage:
		page, err := strconv.Atoi(strings.Join(args, ""))
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: i18n.T(lang, i18n.InvalidPage)})
		}
		return h.showLists(c, page)
	case actNewList:
		return h.askListName(c)
	case actSettings:
		return h.showSettings(c)
	case actLanguage:
		return h.render(c, i18n.T(lang, i18n.ChooseLanguage), languagesMarkup(lang))
	case actSetLanguage:
		if len(args) == 0 {
			return h.alert(c, i18n.T(lang, i18n.ErrInvalidLang))
		}
		return h.setLanguage(c, args[0])
	case actReminderOn:
		return h.toggleReminder(c, true)
	case actReminderOff:
		return h.toggleReminder(c, false)
	case actReminderTime:
		return h.askReminderTime(c)
	case actShow:
		return h.quizShowAnswer(c)
	case actSkip:
		return h.quizSkip(c)
	case actNext:
		return h.quizNext(c)
	case actRetry:
		return h.quizRetry(c)
	case actStop:
		return h.quizStop(c)
	}

	// Everything below addresses a list or a word by ID
	id, ok := argID(args, 0)
	if !ok {
		h.logger.Warn("Unhandled callback in handleCallback",
			zap.String("data", callback.Data),
			zap.String("unique", callback.Unique),
		)
		return c.Respond()
	}

	switch action {
	case actList:
		return h.showList(c, id)
	case actAddWords:
		return h.askWord(c, id)
	case actRename:
		return h.askRename(c, id)
	case actDelete:
		return h.confirmDeleteList(c, id)
	case actDeleteOK:
		return h.deleteList(c, id)
	case actWords:
		page := 1
		if len(args) > 1 {
			if p, err := strconv.Atoi(args[1]); err == nil {
				page = p
			}
		}
		return h.showWords(c, id, page)
	case actWord:
		return h.showWord(c, id)
	case actEditWord:
		return h.askEditWord(c, id, false)
	case actEditMeaning:
		return h.askEditWord(c, id, true)
	case actDeleteWord:
		return h.deleteWord(c, id)
	case actLearn:
		return h.chooseMode(c, id)
	case actMode:
		if len(args) < 2 {
			return c.Respond()
		}
		return h.startQuiz(c, id, args[1])
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", callback.Data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
