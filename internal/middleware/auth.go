package middleware

import (
	"strings"

	"memorizer/internal/domain"
	"memorizer/internal/i18n"
	"memorizer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LanguageKey is the context key holding the sender's domain.Language
const LanguageKey = "lang"

// AuthMiddleware creates authentication middleware. It stores the sender's
// language in the context, lets /start and plain text through so the
// password prompt works, and blocks everything else until authorized.
func AuthMiddleware(authService *service.AuthService, settingsService *service.SettingsService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}
			userID := sender.ID

			lang := i18n.Match(sender.LanguageCode)

			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, i18n.T(lang, i18n.GenericError))
			}

			if settings, err := settingsService.Get(userID); err != nil {
				logger.Warn("Failed to load settings in middleware",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			} else {
				lang = settings.Language
			}
			c.Set(LanguageKey, lang)

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, i18n.T(lang, i18n.GenericError))
			}

			if authorized || allowUnauthorized(c) {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{
					Text:      i18n.T(lang, i18n.AuthRequired),
					ShowAlert: true,
				})
			}
			return c.Send(i18n.T(lang, i18n.AskPassword))
		}
	}
}

// allowUnauthorized reports whether the update may reach handlers before
// the user is authorized
func allowUnauthorized(c tele.Context) bool {
	if c.Callback() != nil {
		return false
	}
	text := strings.TrimSpace(c.Text())
	return isStartCommand(text) || !strings.HasPrefix(text, "/")
}

// isStartCommand matches "/start", "/start payload" and "/start@bot"
func isStartCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	command, _, _ := strings.Cut(fields[0], "@")
	return command == "/start"
}

func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// Language returns the language stored by AuthMiddleware
func Language(c tele.Context) (domain.Language, bool) {
	lang, ok := c.Get(LanguageKey).(domain.Language)
	return lang, ok
}
