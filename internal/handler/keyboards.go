package handler

import (
	"fmt"
	"strconv"
	"strings"

	"memorizer/internal/domain"
	"memorizer/internal/i18n"

	tele "gopkg.in/telebot.v3"
)

// Callback actions. Arguments follow the action separated by "_",
// e.g. "list_42" or "mode_42_wm".
const (
	actMenu         = "menu"
	actCancel       = "cancel"
	actLists        = "lists"
	actPage         = "page"
	actNewList      = "newlist"
	actList         = "list"
	actAddWords     = "add"
	actRename       = "rename"
	actDelete       = "del"
	actDeleteOK     = "delok"
	actWords        = "words"
	actWord         = "word"
	actEditWord     = "editw"
	actEditMeaning  = "editm"
	actDeleteWord   = "delw"
	actLearn        = "learn"
	actMode         = "mode"
	actShow         = "show"
	actSkip         = "skip"
	actNext         = "next"
	actRetry        = "retry"
	actStop         = "stop"
	actSettings     = "settings"
	actLanguage     = "lang"
	actSetLanguage  = "setlang"
	actReminderOn   = "remon"
	actReminderOff  = "remoff"
	actReminderTime = "remtime"
)

const callbackSeparator = "_"

const (
	// wordsPageSize is how many word buttons one page shows
	wordsPageSize = 10
	// maxButtonRunes keeps button labels readable
	maxButtonRunes = 48
	// maxMessageRunes is Telegram's limit for one text message
	maxMessageRunes = 4096
)

// callbackData joins an action and its arguments into button data
func callbackData(action string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, action)
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, callbackSeparator)
}

// parseCallback splits raw callback data into an action and its arguments
func parseCallback(data string) (string, []string) {
	parts := strings.Split(cleanCallbackData(data), callbackSeparator)
	return parts[0], parts[1:]
}

// argID parses the i-th callback argument as an ID
func argID(args []string, i int) (int64, bool) {
	if i >= len(args) {
		return 0, false
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// button creates a localized inline button
func button(markup *tele.ReplyMarkup, lang domain.Language, key i18n.Key, action string, args ...any) tele.Btn {
	return markup.Data(i18n.T(lang, key), callbackData(action, args...))
}

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup(lang domain.Language) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(button(menu, lang, i18n.BtnMyLists, actLists)),
		menu.Row(button(menu, lang, i18n.BtnNewList, actNewList)),
		menu.Row(button(menu, lang, i18n.BtnSettings, actSettings)),
	)
	return menu
}

// singleButton returns a keyboard with one button
func singleButton(lang domain.Language, key i18n.Key, action string, args ...any) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(button(markup, lang, key, action, args...)))
	return markup
}

func cancelMarkup(lang domain.Language) *tele.ReplyMarkup {
	return singleButton(lang, i18n.BtnCancel, actCancel)
}

func backToListMarkup(lang domain.Language, listID int64) *tele.ReplyMarkup {
	return singleButton(lang, i18n.BtnBackToList, actList, listID)
}

// listsMarkup builds the paginated "My lists" keyboard
func listsMarkup(lang domain.Language, lists []domain.WordList, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, list := range lists {
		btnText := fmt.Sprintf("%s (%d)", list.Name, list.WordCount)
		rows = append(rows, markup.Row(markup.Data(btnText, callbackData(actList, list.ID))))
	}

	if navRow := pageRow(markup, page, totalPages, func(p int) string {
		return callbackData(actPage, p)
	}); len(navRow) > 0 {
		rows = append(rows, navRow)
	}

	rows = append(rows,
		markup.Row(button(markup, lang, i18n.BtnNewList, actNewList)),
		markup.Row(button(markup, lang, i18n.BtnBack, actMenu)),
	)

	markup.Inline(rows...)
	return markup
}

// pageRow returns the arrow row for a paginated screen, empty on a single page
func pageRow(markup *tele.ReplyMarkup, page, totalPages int, data func(page int) string) tele.Row {
	navRow := tele.Row{}
	if totalPages <= 1 {
		return navRow
	}
	if page > 1 {
		navRow = append(navRow, markup.Data("⬅️", data(page-1)))
	}
	if page < totalPages {
		navRow = append(navRow, markup.Data("➡️", data(page+1)))
	}
	return navRow
}

// clip shortens s to at most max runes, marking the cut with "…"
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// wordsMarkup builds one page of the word buttons of a list
func wordsMarkup(lang domain.Language, listID int64, words []domain.Word, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(words)+2)

	for _, word := range words {
		btnText := clip(fmt.Sprintf("%s — %s", word.Word, word.Meaning), maxButtonRunes)
		rows = append(rows, markup.Row(markup.Data(btnText, callbackData(actWord, word.ID))))
	}

	if navRow := pageRow(markup, page, totalPages, func(p int) string {
		return callbackData(actWords, listID, p)
	}); len(navRow) > 0 {
		rows = append(rows, navRow)
	}

	rows = append(rows, markup.Row(button(markup, lang, i18n.BtnBackToList, actList, listID)))
	markup.Inline(rows...)
	return markup
}

// listMarkup builds the list detail keyboard
func listMarkup(lang domain.Language, listID int64) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			button(markup, lang, i18n.BtnAddWords, actAddWords, listID),
			button(markup, lang, i18n.BtnLearn, actLearn, listID),
		),
		markup.Row(
			button(markup, lang, i18n.BtnEditWords, actWords, listID),
			button(markup, lang, i18n.BtnRename, actRename, listID),
		),
		markup.Row(button(markup, lang, i18n.BtnDeleteList, actDelete, listID)),
		markup.Row(button(markup, lang, i18n.BtnToLists, actLists)),
	)
	return markup
}

// quizMarkup builds the keyboard for the current quiz state
func quizMarkup(lang domain.Language, session *domain.QuizSession) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	stop := markup.Row(button(markup, lang, i18n.BtnStop, actStop))

	switch session.State {
	case domain.QuizCorrect, domain.QuizShowAnswer:
		markup.Inline(
			markup.Row(button(markup, lang, i18n.BtnNext, actNext)),
			stop,
		)
	case domain.QuizWrong:
		markup.Inline(
			markup.Row(
				button(markup, lang, i18n.BtnRetry, actRetry),
				button(markup, lang, i18n.BtnShowAnswer, actShow),
			),
			markup.Row(button(markup, lang, i18n.BtnSkip, actSkip)),
			stop,
		)
	case domain.QuizCompleted:
		markup.Inline(
			markup.Row(button(markup, lang, i18n.BtnLearnAgain, actMode, session.ListID, session.Mode)),
			markup.Row(button(markup, lang, i18n.BtnBackToList, actList, session.ListID)),
		)
	default:
		markup.Inline(
			markup.Row(
				button(markup, lang, i18n.BtnShowAnswer, actShow),
				button(markup, lang, i18n.BtnSkip, actSkip),
			),
			stop,
		)
	}
	return markup
}

// settingsMarkup builds the settings keyboard
func settingsMarkup(lang domain.Language, settings domain.Settings) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	toggle := button(markup, lang, i18n.BtnReminderOn, actReminderOn)
	if settings.ReminderEnabled {
		toggle = button(markup, lang, i18n.BtnReminderOff, actReminderOff)
	}

	markup.Inline(
		markup.Row(button(markup, lang, i18n.BtnLanguage, actLanguage)),
		markup.Row(toggle),
		markup.Row(button(markup, lang, i18n.BtnReminderTime, actReminderTime)),
		markup.Row(button(markup, lang, i18n.BtnMainMenu, actMenu)),
	)
	return markup
}

// languagesMarkup lists the supported languages by their own names
func languagesMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, l := range domain.Languages {
		rows = append(rows, markup.Row(markup.Data(l.DisplayName(), callbackData(actSetLanguage, l))))
	}
	rows = append(rows, markup.Row(button(markup, lang, i18n.BtnBackToSettings, actSettings)))

	markup.Inline(rows...)
	return markup
}
