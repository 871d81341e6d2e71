package domain

import "fmt"

// Language is a supported interface language code
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTurkish Language = "tr"
	LanguageRussian Language = "ru"
	LanguageSpanish Language = "es"
)

// Languages lists supported languages in menu order
var Languages = []Language{LanguageEnglish, LanguageTurkish, LanguageRussian, LanguageSpanish}

// ParseLanguage returns the language for code, English if unknown
func ParseLanguage(code string) Language {
	for _, l := range Languages {
		if string(l) == code {
			return l
		}
	}
	return LanguageEnglish
}

// DisplayName returns the language name in that language
func (l Language) DisplayName() string {
	switch l {
	case LanguageTurkish:
		return "Türkçe"
	case LanguageRussian:
		return "Русский"
	case LanguageSpanish:
		return "Español"
	default:
		return "English"
	}
}

const (
	DefaultReminderHour   = 9
	DefaultReminderMinute = 0
)

// Settings holds per-user preferences
type Settings struct {
	UserID          int64
	Language        Language
	ReminderEnabled bool
	ReminderHour    int
	ReminderMinute  int
}

// DefaultSettings returns settings for a user without a stored row
func DefaultSettings(userID int64) Settings {
	return Settings{
		UserID:         userID,
		Language:       LanguageEnglish,
		ReminderHour:   DefaultReminderHour,
		ReminderMinute: DefaultReminderMinute,
	}
}

// FormattedTime returns reminder time as "9:05 AM"
func (s Settings) FormattedTime() string {
	hour12 := s.ReminderHour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	amPm := "AM"
	if s.ReminderHour >= 12 {
		amPm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour12, s.ReminderMinute, amPm)
}
