package handler

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"memorizer/internal/domain"
	"memorizer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// previewWords caps the words printed on the list screen
const previewWords = 40

var timeNow = time.Now

// showLists shows one page of the user's word lists
func (h *Handler) showLists(c tele.Context, page int) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	lists, totalPages, err := h.listService.GetListsPage(userID, page)
	if err != nil {
		h.logger.Error("Failed to get word lists", zap.Error(err))
		return h.alert(c, i18n.T(lang, i18n.LoadError))
	}

	if len(lists) == 0 && page > 1 {
		return c.Respond(&tele.CallbackResponse{Text: i18n.T(lang, i18n.NoData)})
	}

	text := i18n.T(lang, i18n.ListsTitle)
	if len(lists) == 0 {
		text = i18n.T(lang, i18n.ListsEmpty)
	}

	return h.render(c, text, listsMarkup(lang, lists, page, totalPages))
}

// askListName prompts for the name of a new list
func (h *Handler) askListName(c tele.Context) error {
	lang := h.lang(c)
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingListName})
	return h.render(c, i18n.T(lang, i18n.AskListName), cancelMarkup(lang))
}

// createList saves a list named by the user
func (h *Handler) createList(c tele.Context, name string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	listID, err := h.listService.CreateList(userID, name)
	if err != nil {
		return h.fail(c, lang, err, "Failed to create list")
	}

	h.logger.Info("List created", zap.Int64("user_id", userID), zap.Int64("list_id", listID))
	h.ResetState(userID)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(button(markup, lang, i18n.BtnAddWords, actAddWords, listID)),
		markup.Row(button(markup, lang, i18n.BtnBackToList, actList, listID)),
	)
	return c.Send(i18n.T(lang, i18n.ListCreated, strings.TrimSpace(name)), markup)
}

// listText renders the list header followed by its words
func listText(lang domain.Language, list *domain.WordList, words []domain.Word, now time.Time) string {
	var b strings.Builder
	b.WriteString(i18n.T(lang, i18n.ListHeader, list.Name, i18n.FormatDate(lang, list.CreatedAt, now), len(words)))
	b.WriteString("\n\n")

	if len(words) == 0 {
		b.WriteString(i18n.T(lang, i18n.ListNoWords))
		return b.String()
	}

	// Reserve one rune for the ellipsis
	size := utf8.RuneCountInString(b.String())
	for i, word := range words {
		line := fmt.Sprintf("%d. %s — %s\n", i+1, word.Word, word.Meaning)
		lineSize := utf8.RuneCountInString(line)
		if i == previewWords || size+lineSize+1 > maxMessageRunes {
			b.WriteString("…")
			break
		}
		b.WriteString(line)
		size += lineSize
	}
	return strings.TrimRight(b.String(), "\n")
}

// showList shows a list with its words and actions
func (h *Handler) showList(c tele.Context, listID int64, notice ...string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	list, err := h.listService.GetList(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	words, err := h.wordService.GetWords(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get words")
	}

	return h.render(c, listText(lang, list, words, timeNow()), listMarkup(lang, listID), notice...)
}

// askRename prompts for a new list name
func (h *Handler) askRename(c tele.Context, listID int64) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	list, err := h.listService.GetList(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingRename, ListID: listID})
	return h.render(c, i18n.T(lang, i18n.AskRename, list.Name), backToListMarkup(lang, listID))
}

// renameList applies the name sent by the user
func (h *Handler) renameList(c tele.Context, listID int64, name string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	if err := h.listService.RenameList(userID, listID, name); err != nil {
		return h.fail(c, lang, err, "Failed to rename list")
	}

	h.ResetState(userID)
	return c.Send(i18n.T(lang, i18n.ListRenamed, strings.TrimSpace(name)), backToListMarkup(lang, listID))
}

// confirmDeleteList asks before deleting a list with its words
func (h *Handler) confirmDeleteList(c tele.Context, listID int64) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	list, err := h.listService.GetList(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(button(markup, lang, i18n.BtnConfirmDelete, actDeleteOK, listID)),
		markup.Row(button(markup, lang, i18n.BtnBackToList, actList, listID)),
	)
	return h.render(c, i18n.T(lang, i18n.ConfirmDeleteList, list.Name, list.WordCount), markup)
}

// deleteList deletes a list and returns to the lists screen
func (h *Handler) deleteList(c tele.Context, listID int64) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	list, err := h.listService.GetList(userID, listID)
	if err != nil {
		return h.fail(c, lang, err, "Failed to get list")
	}

	if err := h.listService.DeleteList(userID, listID); err != nil {
		return h.fail(c, lang, err, "Failed to delete list")
	}

	lists, totalPages, err := h.listService.GetListsPage(userID, 1)
	if err != nil {
		h.logger.Error("Failed to get word lists", zap.Error(err))
		return h.alert(c, i18n.T(lang, i18n.LoadError))
	}

	text := i18n.T(lang, i18n.ListsTitle)
	if len(lists) == 0 {
		text = i18n.T(lang, i18n.ListsEmpty)
	}
	return h.render(c, text, listsMarkup(lang, lists, 1, totalPages), i18n.T(lang, i18n.ListDeleted, list.Name))
}
