package service

import (
	"fmt"
	"math/rand/v2"

	"memorizer/internal/domain"
	"memorizer/internal/repository"
)

// QuizService prepares quiz sessions over a list's words
type QuizService struct {
	listRepo repository.WordListRepository
	wordRepo repository.WordRepository
	shuffle  domain.ShuffleFunc
}

// NewQuizService creates a quiz service, a nil shuffle uses math/rand
func NewQuizService(listRepo repository.WordListRepository, wordRepo repository.WordRepository, shuffle domain.ShuffleFunc) *QuizService {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &QuizService{
		listRepo: listRepo,
		wordRepo: wordRepo,
		shuffle:  shuffle,
	}
}

// Start loads the list's words and returns a freshly shuffled session.
// An empty list yields ErrNoWords.
func (s *QuizService) Start(userID, listID int64, mode domain.QuizMode) (*domain.QuizSession, error) {
	list, err := s.listRepo.GetList(userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to start learning: %w", err)
	}
	if list == nil {
		return nil, ErrListNotFound
	}

	words, err := s.wordRepo.GetWordsByList(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to start learning: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return domain.NewQuizSession(listID, words, mode, s.shuffle), nil
}
