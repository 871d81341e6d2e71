// Package i18n holds the bot's message catalogs and locale helpers.
package i18n

import (
	"fmt"
	"math/rand/v2"
	"time"

	"memorizer/internal/domain"

	"golang.org/x/text/language"
)

// Key identifies a localized message
type Key string

var catalogs = map[domain.Language]map[Key]string{
	domain.LanguageEnglish: english,
	domain.LanguageTurkish: turkish,
	domain.LanguageRussian: russian,
	domain.LanguageSpanish: spanish,
}

// T returns the message for key in lang, formatted with args.
// Missing keys fall back to English, then to the key itself.
func T(lang domain.Language, key Key, args ...any) string {
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = english[key]
	}
	if !ok {
		msg = string(key)
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Tag order must match domain.Languages
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Turkish,
	language.Russian,
	language.Spanish,
})

// Match picks the supported language closest to a client language code
// such as "es-MX"
func Match(code string) domain.Language {
	if code == "" {
		return domain.LanguageEnglish
	}
	tag, err := language.Parse(code)
	if err != nil {
		return domain.LanguageEnglish
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx >= len(domain.Languages) {
		return domain.LanguageEnglish
	}
	return domain.Languages[idx]
}

// FormatDate renders t relative to now: today, yesterday or "15 Jun 2024"
func FormatDate(lang domain.Language, t, now time.Time) string {
	t = t.In(now.Location())

	if sameDay(t, now) {
		return T(lang, DateToday)
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return T(lang, DateYesterday)
	}

	names, ok := months[lang]
	if !ok {
		names = months[domain.LanguageEnglish]
	}
	return fmt.Sprintf("%d %s %d", t.Day(), names[t.Month()-1], t.Year())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

var reminderEmojis = []string{
	"📚", "🎯", "💪", "🔥", "📖", "📝", "🌟", "🧠", "🚀", "⭐",
	"🎓", "💡", "🎉", "🏆", "💎", "🌈", "🍀", "🌻", "⚡", "✨",
}

// Reminder returns a random reminder text with a random emoji
func Reminder(lang domain.Language) string {
	messages, ok := reminders[lang]
	if !ok || len(messages) == 0 {
		messages = reminders[domain.LanguageEnglish]
	}
	emoji := reminderEmojis[rand.IntN(len(reminderEmojis))]
	return emoji + " " + messages[rand.IntN(len(messages))]
}
