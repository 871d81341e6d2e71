package handler

import (
	"memorizer/internal/domain"
	"memorizer/internal/i18n"
	"memorizer/internal/middleware"
	"memorizer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// settingsText renders the settings summary
func settingsText(lang domain.Language, settings domain.Settings) string {
	reminder := i18n.T(lang, i18n.ReminderOff)
	if settings.ReminderEnabled {
		reminder = i18n.T(lang, i18n.ReminderOn, settings.FormattedTime())
	}
	return i18n.T(lang, i18n.SettingsTitle, settings.Language.DisplayName(), reminder)
}

// showSettings shows the settings screen
func (h *Handler) showSettings(c tele.Context, notice ...string) error {
	settings, err := h.settingsService.Get(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to get settings", zap.Error(err))
		return h.alert(c, i18n.T(h.lang(c), i18n.LoadError))
	}

	lang := settings.Language
	return h.render(c, settingsText(lang, settings), settingsMarkup(lang, settings), notice...)
}

// setLanguage switches the interface language
func (h *Handler) setLanguage(c tele.Context, code string) error {
	lang, err := h.settingsService.SetLanguage(c.Sender().ID, code)
	if err != nil {
		return h.fail(c, h.lang(c), err, "Failed to set language")
	}

	c.Set(middleware.LanguageKey, lang)
	return h.showSettings(c, i18n.T(lang, i18n.LanguageChanged, lang.DisplayName()))
}

// toggleReminder turns the daily reminder on or off
func (h *Handler) toggleReminder(c tele.Context, enabled bool) error {
	lang := h.lang(c)

	settings, err := h.settingsService.EnableReminder(c.Sender().ID, enabled)
	if err != nil {
		return h.fail(c, lang, err, "Failed to switch reminder")
	}

	notice := i18n.T(lang, i18n.ReminderDisabled)
	if enabled {
		notice = i18n.T(lang, i18n.ReminderSaved, settings.FormattedTime())
	}
	return h.render(c, settingsText(lang, settings), settingsMarkup(lang, settings), notice)
}

// askReminderTime prompts for the reminder time
func (h *Handler) askReminderTime(c tele.Context) error {
	lang := h.lang(c)
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingReminderTime})
	return h.render(c, i18n.T(lang, i18n.AskReminderTime), singleButton(lang, i18n.BtnBackToSettings, actSettings))
}

// setReminderTime saves an "HH:MM" time sent by the user
func (h *Handler) setReminderTime(c tele.Context, value string) error {
	userID := c.Sender().ID
	lang := h.lang(c)

	hour, minute, err := service.ParseReminderTime(value)
	if err != nil {
		return h.fail(c, lang, err, "Failed to parse reminder time")
	}

	if err := h.settingsService.SetReminderTime(userID, hour, minute); err != nil {
		return h.fail(c, lang, err, "Failed to save reminder time")
	}

	h.ResetState(userID)
	saved := domain.Settings{ReminderHour: hour, ReminderMinute: minute}
	return c.Send(
		i18n.T(lang, i18n.ReminderSaved, saved.FormattedTime()),
		singleButton(lang, i18n.BtnBackToSettings, actSettings),
	)
}
