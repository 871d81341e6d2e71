package service

import (
	"fmt"
	"strings"
	"testing"

	"memorizer/internal/domain"
	"memorizer/internal/repository"
	"memorizer/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestWordService_AddWord(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		meaning       string
		listExists    bool
		callAdd       bool
		mockError     error
		expectedErr   error
		expectedError bool
	}{
		{
			name:       "valid pair",
			word:       " hello ",
			meaning:    "merhaba",
			listExists: true,
			callAdd:    true,
		},
		{
			name:          "empty word",
			word:          "",
			meaning:       "merhaba",
			expectedErr:   ErrEmptyWord,
			expectedError: true,
		},
		{
			name:          "blank meaning",
			word:          "hello",
			meaning:       "   ",
			expectedErr:   ErrEmptyWord,
			expectedError: true,
		},
		{
			name:          "too long meaning",
			word:          "hello",
			meaning:       strings.Repeat("a", MaxWordLength+1),
			expectedErr:   ErrWordTooLong,
			expectedError: true,
		},
		{
			name:          "list of another user",
			word:          "hello",
			meaning:       "merhaba",
			listExists:    false,
			expectedErr:   ErrListNotFound,
			expectedError: true,
		},
		{
			name:          "database error",
			word:          "hello",
			meaning:       "merhaba",
			listExists:    true,
			callAdd:       true,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			listRepo := new(testutil.MockWordListRepository)

			validInput := tt.expectedErr != ErrEmptyWord && tt.expectedErr != ErrWordTooLong
			if validInput {
				if tt.listExists {
					listRepo.On("GetList", int64(123), int64(7)).Return(testutil.NewTestList(7, 123, "Animals", 0), nil)
				} else {
					listRepo.On("GetList", int64(123), int64(7)).Return(nil, nil)
				}
			}
			if tt.callAdd {
				wordRepo.On("AddWord", int64(7), "hello", "merhaba").Return(int64(42), tt.mockError)
			}

			service := NewWordService(wordRepo, listRepo)

			id, err := service.AddWord(123, 7, tt.word, tt.meaning)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), id)
			}

			wordRepo.AssertExpectations(t)
			listRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_GetWord(t *testing.T) {
	word := testutil.NewTestWord(42, 7, "hello", "merhaba")

	tests := []struct {
		name        string
		mockWord    *domain.Word
		mockWordErr error
		checkList   bool
		listExists  bool
		expectedErr error
	}{
		{
			name:       "own word",
			mockWord:   word,
			checkList:  true,
			listExists: true,
		},
		{
			name:        "missing word",
			mockWord:    nil,
			expectedErr: ErrWordNotFound,
		},
		{
			name:        "word in another user's list",
			mockWord:    word,
			checkList:   true,
			listExists:  false,
			expectedErr: ErrWordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			listRepo := new(testutil.MockWordListRepository)

			wordRepo.On("GetWord", int64(42)).Return(tt.mockWord, tt.mockWordErr)
			if tt.checkList {
				if tt.listExists {
					listRepo.On("GetList", int64(123), int64(7)).Return(testutil.NewTestList(7, 123, "Animals", 1), nil)
				} else {
					listRepo.On("GetList", int64(123), int64(7)).Return(nil, nil)
				}
			}

			service := NewWordService(wordRepo, listRepo)

			result, err := service.GetWord(123, 42)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, word, result)
			}

			wordRepo.AssertExpectations(t)
			listRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_UpdateWord(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	listRepo := new(testutil.MockWordListRepository)

	wordRepo.On("GetWord", int64(42)).Return(testutil.NewTestWord(42, 7, "hello", "merhaba"), nil)
	listRepo.On("GetList", int64(123), int64(7)).Return(testutil.NewTestList(7, 123, "Animals", 1), nil)
	wordRepo.On("UpdateWord", int64(42), "hello", "selam").Return(nil)

	service := NewWordService(wordRepo, listRepo)

	err := service.UpdateWord(123, 42, "hello", " selam ")

	assert.NoError(t, err)
	wordRepo.AssertExpectations(t)
	listRepo.AssertExpectations(t)
}

func TestWordService_UpdateWord_Validation(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	listRepo := new(testutil.MockWordListRepository)

	service := NewWordService(wordRepo, listRepo)

	err := service.UpdateWord(123, 42, "hello", "")

	assert.ErrorIs(t, err, ErrEmptyWord)
	wordRepo.AssertNotCalled(t, "UpdateWord")
}

func TestWordService_UpdateWord_RemovedMeanwhile(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	listRepo := new(testutil.MockWordListRepository)

	wordRepo.On("GetWord", int64(42)).Return(testutil.NewTestWord(42, 7, "hello", "merhaba"), nil)
	listRepo.On("GetList", int64(123), int64(7)).Return(testutil.NewTestList(7, 123, "Animals", 1), nil)
	wordRepo.On("UpdateWord", int64(42), "hello", "selam").Return(repository.ErrNotFound)

	service := NewWordService(wordRepo, listRepo)

	err := service.UpdateWord(123, 42, "hello", "selam")

	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestWordService_DeleteWord(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name: "successful delete",
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("database error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(testutil.MockWordRepository)
			listRepo := new(testutil.MockWordListRepository)

			wordRepo.On("GetWord", int64(42)).Return(testutil.NewTestWord(42, 7, "hello", "merhaba"), nil)
			listRepo.On("GetList", int64(123), int64(7)).Return(testutil.NewTestList(7, 123, "Animals", 1), nil)
			wordRepo.On("DeleteWord", int64(42)).Return(tt.mockError)

			service := NewWordService(wordRepo, listRepo)

			err := service.DeleteWord(123, 42)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			wordRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_DeleteWord_NotOwned(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	listRepo := new(testutil.MockWordListRepository)

	wordRepo.On("GetWord", int64(42)).Return(testutil.NewTestWord(42, 7, "hello", "merhaba"), nil)
	listRepo.On("GetList", int64(999), int64(7)).Return(nil, nil)

	service := NewWordService(wordRepo, listRepo)

	err := service.DeleteWord(999, 42)

	assert.ErrorIs(t, err, ErrWordNotFound)
	wordRepo.AssertNotCalled(t, "DeleteWord", int64(42))
}

func TestWordService_GetWords(t *testing.T) {
	words := testutil.NewTestWords(7, 3)

	wordRepo := new(testutil.MockWordRepository)
	listRepo := new(testutil.MockWordListRepository)

	listRepo.On("GetList", int64(123), int64(7)).Return(testutil.NewTestList(7, 123, "Animals", 3), nil)
	wordRepo.On("GetWordsByList", int64(7)).Return(words, nil)

	service := NewWordService(wordRepo, listRepo)

	result, err := service.GetWords(123, 7)

	assert.NoError(t, err)
	assert.Equal(t, words, result)
	wordRepo.AssertExpectations(t)
	listRepo.AssertExpectations(t)
}

func TestWordService_GetWords_ListMissing(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	listRepo := new(testutil.MockWordListRepository)

	listRepo.On("GetList", int64(123), int64(7)).Return(nil, nil)

	service := NewWordService(wordRepo, listRepo)

	result, err := service.GetWords(123, 7)

	assert.ErrorIs(t, err, ErrListNotFound)
	assert.Nil(t, result)
	wordRepo.AssertNotCalled(t, "GetWordsByList", int64(7))
}

func TestWordService_CountWords(t *testing.T) {
	wordRepo := new(testutil.MockWordRepository)
	wordRepo.On("CountWords", int64(7)).Return(5, nil)

	service := NewWordService(wordRepo, new(testutil.MockWordListRepository))

	count, err := service.CountWords(7)

	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestWordService_ValidateWord(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{name: "valid word", input: "cat"},
		{name: "surrounding spaces", input: "  cat  "},
		{name: "max length", input: strings.Repeat("я", MaxWordLength)},
		{name: "blank", input: "   ", expectedErr: ErrEmptyWord},
		{name: "too long", input: strings.Repeat("я", MaxWordLength+1), expectedErr: ErrWordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewWordService(new(testutil.MockWordRepository), new(testutil.MockWordListRepository))

			err := service.ValidateWord(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
