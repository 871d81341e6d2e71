package domain

import "time"

// WordList is a user-named collection of words
type WordList struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time

	// WordCount is filled by list queries, never stored
	WordCount int
}

// Word represents a word-meaning pair inside a list
type Word struct {
	ID        int64
	ListID    int64
	Word      string
	Meaning   string
	CreatedAt time.Time
}
