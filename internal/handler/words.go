package handler

import (
	"errors"
	"strings"

	"memorizer/internal/domain"
	"memorizer/internal/i18n"
	"memorizer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// wordMarkup builds the word detail keyboard
func wordMarkup(lang domain.Language, word *domain.Word) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			button(markup, lang, i18n.BtnEditWord, actEditWord, word.ID),
			button(markup, lang, i18n.BtnEditMeaning, actEditMeaning, word.ID),
		),
		markup.Row(button(markup, lang, i18n.BtnDeleteWord, actDeleteWord, word.ID)),
		markup.Row(button(markup, lang, i18n.BtnBackToList, actList, word.ListID)),
	)
	return markup
}

// askWord starts adding words to a list
func (h *Handler) askWord(c tele.Context, listID int64) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	if _, err := h.listService.GetList(userID, listID); err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord, ListID: listID})
	return h.render(c, i18n.T(lang, i18n.AskWord), backToListMarkup(lang, listID))
}

// receiveWord keeps the word and asks for its meaning
func (h *Handler) receiveWord(c tele.Context, listID int64, word string) error {
	lang := h.lang(c)

	// Reject the word before the user types its meaning
	if err := h.wordService.ValidateWord(word); err != nil {
		return h.fail(c, lang, err, "Failed to validate word")
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:       domain.StateWaitingMeaning,
		ListID:      listID,
		CurrentWord: word,
	})
	return c.Send(i18n.T(lang, i18n.AskMeaning, word), backToListMarkup(lang, listID))
}

// receiveMeaning saves the pending word with its meaning
func (h *Handler) receiveMeaning(c tele.Context, state *domain.StateData, meaning string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	wordID, err := h.wordService.AddWord(userID, state.ListID, state.CurrentWord, meaning)
	if err != nil {
		if errors.Is(err, service.ErrListNotFound) {
			h.ResetState(userID)
		} else {
			// Start the pair over
			h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord, ListID: state.ListID})
		}
		return h.fail(c, lang, err, "Failed to save word")
	}

	h.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.Int64("list_id", state.ListID),
		zap.Int64("word_id", wordID),
	)

	count, err := h.wordService.CountWords(state.ListID)
	if err != nil {
		h.logger.Warn("Failed to count words", zap.Error(err))
	}

	// Keep adding to the same list
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord, ListID: state.ListID})
	return c.Send(i18n.T(lang, i18n.WordSaved, count), backToListMarkup(lang, state.ListID))
}

// wordsPage returns one page of words and the page count. The page is
// clamped to the existing pages.
func wordsPage(words []domain.Word, page int) ([]domain.Word, int, int) {
	totalPages := (len(words) + wordsPageSize - 1) / wordsPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * wordsPageSize
	end := min(start+wordsPageSize, len(words))
	return words[start:end], page, totalPages
}

// showWords lists one page of a list's words as buttons
func (h *Handler) showWords(c tele.Context, listID int64, page int, notice ...string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	words, err := h.wordService.GetWords(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get words")
	}

	if len(words) == 0 {
		list, err := h.listService.GetList(userID, listID)
		if err != nil {
			return h.fail(c, lang, err, "Failed to get list")
		}
		return h.render(c, listText(lang, list, words, timeNow()), listMarkup(lang, listID), notice...)
	}

	pageWords, page, totalPages := wordsPage(words, page)
	return h.render(c, i18n.T(lang, i18n.WordsTitle), wordsMarkup(lang, listID, pageWords, page, totalPages), notice...)
}

// showWord shows a single word with its actions
func (h *Handler) showWord(c tele.Context, wordID int64) error {
	lang := h.lang(c)

	word, err := h.wordService.GetWord(c.Sender().ID, wordID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get word")
	}

	return h.render(c, i18n.T(lang, i18n.WordDetail, word.Word, word.Meaning), wordMarkup(lang, word))
}

// askEditWord prompts for a new word or meaning
func (h *Handler) askEditWord(c tele.Context, wordID int64, meaning bool) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	word, err := h.wordService.GetWord(userID, wordID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get word")
	}

	state := &domain.StateData{State: domain.StateWaitingEditWord, ListID: word.ListID, WordID: wordID}
	text := i18n.T(lang, i18n.AskEditWord, word.Word)
	if meaning {
		state.State = domain.StateWaitingEditMeaning
		text = i18n.T(lang, i18n.AskEditMeaning, word.Meaning)
	}

	h.SetState(userID, state)
	return h.render(c, text, backToListMarkup(lang, word.ListID))
}

// updateWord replaces the word or the meaning of an entry
func (h *Handler) updateWord(c tele.Context, wordID int64, value string, meaning bool) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	word, err := h.wordService.GetWord(userID, wordID)
	if err != nil {
		h.ResetState(userID)
		return h.fail(c, lang, err, "Failed to get word")
	}

	if meaning {
		word.Meaning = strings.TrimSpace(value)
	} else {
		word.Word = strings.TrimSpace(value)
	}

	if err := h.wordService.UpdateWord(userID, wordID, word.Word, word.Meaning); err != nil {
		return h.fail(c, lang, err, "Failed to update word")
	}

	h.ResetState(userID)
	return c.Send(
		i18n.T(lang, i18n.WordUpdated)+"\n\n"+i18n.T(lang, i18n.WordDetail, word.Word, word.Meaning),
		wordMarkup(lang, word),
	)
}

// deleteWord deletes a word and returns to the word list
func (h *Handler) deleteWord(c tele.Context, wordID int64) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	word, err := h.wordService.GetWord(userID, wordID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get word")
	}

	if err := h.wordService.DeleteWord(userID, wordID); err != nil {
		return h.fail(c, lang, err, "Failed to delete word")
	}

	return h.showWords(c, word.ListID, 1, i18n.T(lang, i18n.WordDeleted))
}
