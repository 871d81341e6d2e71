package postgres

import (
	"database/sql"

	"memorizer/internal/domain"
)

// WordListRepo implements repository.WordListRepository
type WordListRepo struct {
	db *sql.DB
}

// NewWordListRepo creates a new word list repository
func NewWordListRepo(db *sql.DB) *WordListRepo {
	return &WordListRepo{db: db}
}

// CreateList inserts a list and returns its ID
func (r *WordListRepo) CreateList(userID int64, name string) (int64, error) {
	query := `
		INSERT INTO word_lists (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(query, userID, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// RenameList renames a list owned by the user
func (r *WordListRepo) RenameList(userID, listID int64, name string) error {
	query := `
		UPDATE word_lists
		SET name = $1
		WHERE id = $2 AND user_id = $3
	`
	return requireAffected(r.db.Exec(query, name, listID, userID))
}

// DeleteList deletes a list owned by the user, words go with it (ON DELETE CASCADE)
func (r *WordListRepo) DeleteList(userID, listID int64) error {
	query := `
		DELETE FROM word_lists
		WHERE id = $1 AND user_id = $2
	`
	return requireAffected(r.db.Exec(query, listID, userID))
}

// GetList returns a list with its word count, nil if not found
func (r *WordListRepo) GetList(userID, listID int64) (*domain.WordList, error) {
	query := `
		SELECT l.id, l.user_id, l.name, l.created_at, COUNT(w.id)
		FROM word_lists l
		LEFT JOIN words w ON w.list_id = l.id
		WHERE l.id = $1 AND l.user_id = $2
		GROUP BY l.id
	`
	var l domain.WordList
	err := r.db.QueryRow(query, listID, userID).Scan(
		&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.WordCount,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// GetLists returns a page of the user's lists, newest first
func (r *WordListRepo) GetLists(userID int64, limit, offset int) ([]domain.WordList, error) {
	query := `
		SELECT l.id, l.user_id, l.name, l.created_at, COUNT(w.id)
		FROM word_lists l
		LEFT JOIN words w ON w.list_id = l.id
		WHERE l.user_id = $1
		GROUP BY l.id
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []domain.WordList
	for rows.Next() {
		var l domain.WordList
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt, &l.WordCount); err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}

	return lists, rows.Err()
}

// CountLists returns the number of lists the user has
func (r *WordListRepo) CountLists(userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM word_lists WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}
