package repository

import (
	"errors"

	"memorizer/internal/domain"
)

// ErrNotFound is returned when a mutation matches no row
var ErrNotFound = errors.New("not found")

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// WordListRepository defines word list data operations
type WordListRepository interface {
	CreateList(userID int64, name string) (int64, error)
	RenameList(userID, listID int64, name string) error
	DeleteList(userID, listID int64) error
	GetList(userID, listID int64) (*domain.WordList, error)
	GetLists(userID int64, limit, offset int) ([]domain.WordList, error)
	CountLists(userID int64) (int, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	AddWord(listID int64, word, meaning string) (int64, error)
	UpdateWord(wordID int64, word, meaning string) error
	DeleteWord(wordID int64) error
	GetWord(wordID int64) (*domain.Word, error)
	GetWordsByList(listID int64) ([]domain.Word, error)
	CountWords(listID int64) (int, error)
}

// SettingsRepository defines per-user settings operations
type SettingsRepository interface {
	GetSettings(userID int64) (domain.Settings, error)
	SaveLanguage(userID int64, lang domain.Language) error
	SaveReminder(userID int64, enabled bool, hour, minute int) error
	GetDueReminders(hour, minute int) ([]domain.Settings, error)
}
