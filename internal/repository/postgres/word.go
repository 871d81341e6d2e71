package postgres

import (
	"database/sql"

	"memorizer/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// AddWord saves a word-meaning pair into a list
func (r *WordRepo) AddWord(listID int64, word, meaning string) (int64, error) {
	query := `
		INSERT INTO words (list_id, word, meaning)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(query, listID, word, meaning).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateWord replaces word and meaning of an existing word
func (r *WordRepo) UpdateWord(wordID int64, word, meaning string) error {
	query := `
		UPDATE words
		SET word = $1, meaning = $2
		WHERE id = $3
	`
	return requireAffected(r.db.Exec(query, word, meaning, wordID))
}

// DeleteWord removes a word
func (r *WordRepo) DeleteWord(wordID int64) error {
	query := `DELETE FROM words WHERE id = $1`
	return requireAffected(r.db.Exec(query, wordID))
}

// GetWord returns a word by ID, nil if not found
func (r *WordRepo) GetWord(wordID int64) (*domain.Word, error) {
	query := `
		SELECT id, list_id, word, meaning, created_at
		FROM words
		WHERE id = $1
	`
	var w domain.Word
	err := r.db.QueryRow(query, wordID).Scan(&w.ID, &w.ListID, &w.Word, &w.Meaning, &w.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// GetWordsByList returns all words of a list in the order they were added
func (r *WordRepo) GetWordsByList(listID int64) ([]domain.Word, error) {
	query := `
		SELECT id, list_id, word, meaning, created_at
		FROM words
		WHERE list_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.ListID, &w.Word, &w.Meaning, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// CountWords returns the number of words in a list
func (r *WordRepo) CountWords(listID int64) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE list_id = $1`

	var count int
	err := r.db.QueryRow(query, listID).Scan(&count)
	return count, err
}
