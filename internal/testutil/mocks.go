package testutil

import (
	"memorizer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockWordListRepository is a mock for WordListRepository
type MockWordListRepository struct {
	mock.Mock
}

func (m *MockWordListRepository) CreateList(userID int64, name string) (int64, error) {
	args := m.Called(userID, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordListRepository) RenameList(userID, listID int64, name string) error {
	args := m.Called(userID, listID, name)
	return args.Error(0)
}

func (m *MockWordListRepository) DeleteList(userID, listID int64) error {
	args := m.Called(userID, listID)
	return args.Error(0)
}

func (m *MockWordListRepository) GetList(userID, listID int64) (*domain.WordList, error) {
	args := m.Called(userID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordList), args.Error(1)
}

func (m *MockWordListRepository) GetLists(userID int64, limit, offset int) ([]domain.WordList, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordList), args.Error(1)
}

func (m *MockWordListRepository) CountLists(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) AddWord(listID int64, word, meaning string) (int64, error) {
	args := m.Called(listID, word, meaning)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) UpdateWord(wordID int64, word, meaning string) error {
	args := m.Called(wordID, word, meaning)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteWord(wordID int64) error {
	args := m.Called(wordID)
	return args.Error(0)
}

func (m *MockWordRepository) GetWord(wordID int64) (*domain.Word, error) {
	args := m.Called(wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordsByList(listID int64) ([]domain.Word, error) {
	args := m.Called(listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountWords(listID int64) (int, error) {
	args := m.Called(listID)
	return args.Int(0), args.Error(1)
}

// MockSettingsRepository is a mock for SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(userID int64) (domain.Settings, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveLanguage(userID int64, lang domain.Language) error {
	args := m.Called(userID, lang)
	return args.Error(0)
}

func (m *MockSettingsRepository) SaveReminder(userID int64, enabled bool, hour, minute int) error {
	args := m.Called(userID, enabled, hour, minute)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetDueReminders(hour, minute int) ([]domain.Settings, error) {
	args := m.Called(hour, minute)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Settings), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
