package handler

import (
	"memorizer/internal/domain"
	"memorizer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// quiz returns the user's active quiz or nil
func (h *Handler) quiz(userID int64) *quizEntry {
	h.quizMux.Lock()
	defer h.quizMux.Unlock()
	return h.quizzes[userID]
}

func (h *Handler) setQuiz(userID int64, entry *quizEntry) {
	h.quizMux.Lock()
	defer h.quizMux.Unlock()
	h.quizzes[userID] = entry
}

// endQuiz discards the user's quiz session
func (h *Handler) endQuiz(userID int64) {
	h.quizMux.Lock()
	defer h.quizMux.Unlock()
	delete(h.quizzes, userID)
}

// quizText renders the quiz screen for the session state
func quizText(lang domain.Language, entry *quizEntry) string {
	session := entry.session

	switch session.State {
	case domain.QuizCompleted:
		return i18n.T(lang, i18n.QuizCompleted, len(session.Words), entry.listName)
	case domain.QuizCorrect:
		return i18n.T(lang, i18n.QuizCorrect, session.Question(), session.Answer())
	case domain.QuizShowAnswer:
		return i18n.T(lang, i18n.QuizAnswer, session.Question(), session.Answer())
	}

	current, total := session.Position()
	text := i18n.T(lang, i18n.QuizQuestion, current, total, session.Percent(), session.Question())
	if session.State == domain.QuizWrong {
		text += "\n\n" + i18n.T(lang, i18n.QuizWrong)
	}
	return text
}

// chooseMode asks how the list should be learned
func (h *Handler) chooseMode(c tele.Context, listID int64) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	list, err := h.listService.GetList(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	if list.WordCount == 0 {
		return h.alert(c, i18n.T(lang, i18n.NoWordsToLearn))
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(button(markup, lang, i18n.BtnModeWM, actMode, listID, domain.ModeWordToMeaning)),
		markup.Row(button(markup, lang, i18n.BtnModeMW, actMode, listID, domain.ModeMeaningToWord)),
		markup.Row(button(markup, lang, i18n.BtnBackToList, actList, listID)),
	)
	return h.render(c, i18n.T(lang, i18n.ChooseMode, list.Name), markup)
}

// startQuiz starts a new shuffled quiz over the list's words
func (h *Handler) startQuiz(c tele.Context, listID int64, modeCode string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	mode, ok := domain.ParseQuizMode(modeCode)
	if !ok {
		return c.Respond()
	}

	list, err := h.listService.GetList(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	session, err := h.quizService.Start(userID, listID, mode)
	if err != nil {
		return h.fail(c, lang, err, "Failed to start quiz")
	}

	h.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.Int64("list_id", listID),
		zap.String("mode", string(mode)),
		zap.Int("words", len(session.Words)),
	)

	entry := &quizEntry{session: session, listName: list.Name}
	h.setQuiz(userID, entry)
	h.SetState(userID, &domain.StateData{State: domain.StateQuizAnswer, ListID: listID})

	return h.render(c, quizText(lang, entry), quizMarkup(lang, session))
}

// activeQuiz returns the user's quiz or tells them there is none
func (h *Handler) activeQuiz(c tele.Context) (*quizEntry, error) {
	entry := h.quiz(c.Sender().ID)
	if entry == nil || entry.session.Completed() {
		return nil, h.alert(c, i18n.T(h.lang(c), i18n.QuizNotActive))
	}
	return entry, nil
}

// showQuiz renders the quiz screen; completion ends the quiz
func (h *Handler) showQuiz(c tele.Context, entry *quizEntry) error {
	lang := h.lang(c)
	session := entry.session

	if session.Completed() {
		userID := c.Sender().ID
		h.endQuiz(userID)
		h.ResetState(userID)
		h.logger.Info("Quiz completed",
			zap.Int64("user_id", userID),
			zap.Int64("list_id", session.ListID),
		)
	}

	return h.render(c, quizText(lang, entry), quizMarkup(lang, session))
}

// quizAnswer checks an answer typed by the user
func (h *Handler) quizAnswer(c tele.Context, answer string) error {
	entry := h.quiz(c.Sender().ID)
	if entry == nil {
		h.ResetState(c.Sender().ID)
		return c.Send(i18n.T(h.lang(c), i18n.QuizNotActive))
	}

	session := entry.session
	// The word is already resolved, repeat the screen
	if session.State != domain.QuizCorrect && session.State != domain.QuizShowAnswer {
		session.Check(answer)
	}

	return h.showQuiz(c, entry)
}

// quizShowAnswer reveals the expected answer
func (h *Handler) quizShowAnswer(c tele.Context) error {
	entry, err := h.activeQuiz(c)
	if entry == nil {
		return err
	}
	entry.session.Reveal()
	return h.showQuiz(c, entry)
}

// quizSkip moves the current word to the end of the queue
func (h *Handler) quizSkip(c tele.Context) error {
	entry, err := h.activeQuiz(c)
	if entry == nil {
		return err
	}
	entry.session.Skip()
	return h.showQuiz(c, entry)
}

// quizNext advances to the next word
func (h *Handler) quizNext(c tele.Context) error {
	entry, err := h.activeQuiz(c)
	if entry == nil {
		return err
	}
	entry.session.Next()
	return h.showQuiz(c, entry)
}

// quizRetry lets the user answer the same word again
func (h *Handler) quizRetry(c tele.Context) error {
	entry, err := h.activeQuiz(c)
	if entry == nil {
		return err
	}
	entry.session.Retry()
	return h.showQuiz(c, entry)
}

// quizStop ends the quiz and returns to its list
func (h *Handler) quizStop(c tele.Context) error {
	userID := c.Sender().ID
	entry, err := h.activeQuiz(c)
	if entry == nil {
		return err
	}

	h.endQuiz(userID)
	h.ResetState(userID)
	return h.showList(c, entry.session.ListID, i18n.T(h.lang(c), i18n.QuizStopped))
}
