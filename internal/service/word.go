package service

import (
	"errors"
	"fmt"
	"strings"

	"memorizer/internal/domain"
	"memorizer/internal/repository"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
	listRepo repository.WordListRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, listRepo repository.WordListRepository) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		listRepo: listRepo,
	}
}

func normalizeWord(word, meaning string) (string, string, error) {
	word = strings.TrimSpace(word)
	meaning = strings.TrimSpace(meaning)

	if err := validate.Struct(wordInput{Word: word, Meaning: meaning}); err != nil {
		switch failedTag(err) {
		case "required":
			return "", "", ErrEmptyWord
		case "max":
			return "", "", ErrWordTooLong
		}
		return "", "", err
	}
	return word, meaning, nil
}

// ValidateWord checks a single word or meaning before it is paired
func (s *WordService) ValidateWord(text string) error {
	if err := validate.Struct(termInput{Text: strings.TrimSpace(text)}); err != nil {
		switch failedTag(err) {
		case "required":
			return ErrEmptyWord
		case "max":
			return ErrWordTooLong
		}
		return err
	}
	return nil
}

// requireList fails with ErrListNotFound unless the user owns the list
func (s *WordService) requireList(userID, listID int64) error {
	list, err := s.listRepo.GetList(userID, listID)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	if list == nil {
		return ErrListNotFound
	}
	return nil
}

// AddWord saves a word-meaning pair into a user's list
func (s *WordService) AddWord(userID, listID int64, word, meaning string) (int64, error) {
	word, meaning, err := normalizeWord(word, meaning)
	if err != nil {
		return 0, err
	}
	if err := s.requireList(userID, listID); err != nil {
		return 0, err
	}

	id, err := s.wordRepo.AddWord(listID, word, meaning)
	if err != nil {
		return 0, fmt.Errorf("failed to add word: %w", err)
	}
	return id, nil
}

// GetWord returns a word if it belongs to one of the user's lists
func (s *WordService) GetWord(userID, wordID int64) (*domain.Word, error) {
	word, err := s.wordRepo.GetWord(wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word: %w", err)
	}
	if word == nil {
		return nil, ErrWordNotFound
	}

	if err := s.requireList(userID, word.ListID); err != nil {
		if errors.Is(err, ErrListNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}
	return word, nil
}

// UpdateWord replaces word and meaning of a user's word
func (s *WordService) UpdateWord(userID, wordID int64, word, meaning string) error {
	word, meaning, err := normalizeWord(word, meaning)
	if err != nil {
		return err
	}
	if _, err := s.GetWord(userID, wordID); err != nil {
		return err
	}

	if err := s.wordRepo.UpdateWord(wordID, word, meaning); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWordNotFound
		}
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

// DeleteWord removes a user's word
func (s *WordService) DeleteWord(userID, wordID int64) error {
	if _, err := s.GetWord(userID, wordID); err != nil {
		return err
	}

	if err := s.wordRepo.DeleteWord(wordID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWordNotFound
		}
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

// GetWords returns all words of a user's list, oldest first
func (s *WordService) GetWords(userID, listID int64) ([]domain.Word, error) {
	if err := s.requireList(userID, listID); err != nil {
		return nil, err
	}

	words, err := s.wordRepo.GetWordsByList(listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	return words, nil
}

// CountWords returns the number of words in a list
func (s *WordService) CountWords(listID int64) (int, error) {
	return s.wordRepo.CountWords(listID)
}
