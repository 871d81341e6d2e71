package handler

import (
	"errors"

	"memorizer/internal/domain"
	"memorizer/internal/i18n"
	"memorizer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// errorText maps a service error to a localized message. The second
// result is false for unexpected errors.
func errorText(lang domain.Language, err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrEmptyListName):
		return i18n.T(lang, i18n.ErrEmptyListName), true
	case errors.Is(err, service.ErrListNameTooLong):
		return i18n.T(lang, i18n.ErrListNameLong, service.MaxListNameLength), true
	case errors.Is(err, service.ErrListNotFound):
		return i18n.T(lang, i18n.ErrListNotFound), true
	case errors.Is(err, service.ErrEmptyWord):
		return i18n.T(lang, i18n.ErrEmptyWord), true
	case errors.Is(err, service.ErrWordTooLong):
		return i18n.T(lang, i18n.ErrWordTooLong, service.MaxWordLength), true
	case errors.Is(err, service.ErrWordNotFound):
		return i18n.T(lang, i18n.ErrWordNotFound), true
	case errors.Is(err, service.ErrNoWords):
		return i18n.T(lang, i18n.NoWordsToLearn), true
	case errors.Is(err, service.ErrInvalidTime):
		return i18n.T(lang, i18n.ErrInvalidTime), true
	case errors.Is(err, service.ErrInvalidLanguage):
		return i18n.T(lang, i18n.ErrInvalidLang), true
	}
	return i18n.T(lang, i18n.GenericError), false
}

// fail reports err to the user, logging it when it is unexpected
func (h *Handler) fail(c tele.Context, lang domain.Language, err error, msg string) error {
	text, known := errorText(lang, err)
	if !known {
		h.logger.Error(msg,
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
	}
	return h.alert(c, text)
}
