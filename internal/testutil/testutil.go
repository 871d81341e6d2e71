package testutil

import (
	"strconv"
	"time"

	"memorizer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestList creates a test word list
func NewTestList(id, userID int64, name string, wordCount int) *domain.WordList {
	return &domain.WordList{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
		WordCount: wordCount,
	}
}

// NewTestWord creates a test word
func NewTestWord(id, listID int64, word, meaning string) *domain.Word {
	return &domain.Word{
		ID:        id,
		ListID:    listID,
		Word:      word,
		Meaning:   meaning,
		CreatedAt: time.Now(),
	}
}

// NewTestWords creates count words in a list named word1..wordN
func NewTestWords(listID int64, count int) []domain.Word {
	words := make([]domain.Word, 0, count)
	for i := 1; i <= count; i++ {
		words = append(words, *NewTestWord(int64(i), listID, "word"+strconv.Itoa(i), "meaning"+strconv.Itoa(i)))
	}
	return words
}
