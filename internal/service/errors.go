package service

import "errors"

// Validation and lookup errors surfaced to the user
var (
	ErrEmptyListName   = errors.New("list name cannot be empty")
	ErrListNameTooLong = errors.New("list name is too long")
	ErrListNotFound    = errors.New("word list not found")
	ErrEmptyWord       = errors.New("word and meaning cannot be empty")
	ErrWordTooLong     = errors.New("word or meaning is too long")
	ErrWordNotFound    = errors.New("word not found")
	ErrNoWords         = errors.New("list has no words")
	ErrInvalidTime     = errors.New("invalid reminder time")
	ErrInvalidLanguage = errors.New("unsupported language")
)
