package service

import (
	"errors"
	"fmt"
	"strings"

	"memorizer/internal/domain"
	"memorizer/internal/repository"

	"go.uber.org/zap"
)

// ListsPageSize is how many lists one page shows
const ListsPageSize = 7

// ListService handles word list business logic
type ListService struct {
	listRepo repository.WordListRepository
	logger   *zap.Logger
}

// NewListService creates a new list service
func NewListService(listRepo repository.WordListRepository, logger *zap.Logger) *ListService {
	return &ListService{
		listRepo: listRepo,
		logger:   logger,
	}
}

func normalizeListName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validate.Struct(listInput{Name: name}); err != nil {
		switch failedTag(err) {
		case "required":
			return "", ErrEmptyListName
		case "max":
			return "", ErrListNameTooLong
		}
		return "", err
	}
	return name, nil
}

// CreateList creates a list and returns its ID
func (s *ListService) CreateList(userID int64, name string) (int64, error) {
	name, err := normalizeListName(name)
	if err != nil {
		return 0, err
	}

	id, err := s.listRepo.CreateList(userID, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create word list: %w", err)
	}

	s.logger.Info("Word list created",
		zap.Int64("user_id", userID),
		zap.Int64("list_id", id),
	)
	return id, nil
}

// RenameList renames a user's list
func (s *ListService) RenameList(userID, listID int64, name string) error {
	name, err := normalizeListName(name)
	if err != nil {
		return err
	}

	if err := s.listRepo.RenameList(userID, listID, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("failed to update word list: %w", err)
	}
	return nil
}

// DeleteList deletes a user's list together with its words
func (s *ListService) DeleteList(userID, listID int64) error {
	if err := s.listRepo.DeleteList(userID, listID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("failed to delete word list: %w", err)
	}

	s.logger.Info("Word list deleted",
		zap.Int64("user_id", userID),
		zap.Int64("list_id", listID),
	)
	return nil
}

// GetList returns a user's list with its word count
func (s *ListService) GetList(userID, listID int64) (*domain.WordList, error) {
	list, err := s.listRepo.GetList(userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}

// GetListsPage returns one page of lists, newest first, and the page count
func (s *ListService) GetListsPage(userID int64, page int) ([]domain.WordList, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * ListsPageSize
	lists, err := s.listRepo.GetLists(userID, ListsPageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load word lists: %w", err)
	}

	total, err := s.listRepo.CountLists(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count word lists: %w", err)
	}

	totalPages := (total + ListsPageSize - 1) / ListsPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return lists, totalPages, nil
}
