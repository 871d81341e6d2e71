package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"memorizer/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var wordColumns = []string{"id", "list_id", "word", "meaning", "created_at"}

func TestWordRepo_AddWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("INSERT INTO words \\(list_id, word, meaning\\) VALUES \\(\\$1, \\$2, \\$3\\) RETURNING id").
		WithArgs(int64(7), "hello", "merhaba").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := repo.AddWord(7, "hello", "merhaba")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_UpdateWord(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "updated",
			rowsAffected: 1,
		},
		{
			name:         "word missing",
			rowsAffected: 0,
			expectedErr:  repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectExec("UPDATE words SET word = \\$1, meaning = \\$2 WHERE id = \\$3").
				WithArgs("hello", "selam", int64(42)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.UpdateWord(42, "hello", "selam")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_DeleteWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectExec("DELETE FROM words WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteWord(42)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_DeleteWord_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectExec("DELETE FROM words").
		WithArgs(int64(42)).
		WillReturnError(fmt.Errorf("db error"))

	err = repo.DeleteWord(42)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetWord(t *testing.T) {
	tests := []struct {
		name        string
		mockRows    *sqlmock.Rows
		mockError   error
		expectedNil bool
	}{
		{
			name:     "word found",
			mockRows: sqlmock.NewRows(wordColumns).AddRow(42, 7, "hello", "merhaba", time.Now()),
		},
		{
			name:        "no word",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			query := "SELECT id, list_id, word, meaning, created_at FROM words WHERE id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnRows(tt.mockRows)
			}

			word, err := repo.GetWord(42)

			assert.NoError(t, err)
			if tt.expectedNil {
				assert.Nil(t, word)
			} else {
				assert.NotNil(t, word)
				assert.Equal(t, int64(7), word.ListID)
				assert.Equal(t, "merhaba", word.Meaning)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_GetWordsByList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows(wordColumns).
		AddRow(1, 7, "hello", "merhaba", now.Add(-time.Hour)).
		AddRow(2, 7, "world", "dünya", now)

	mock.ExpectQuery("SELECT id, list_id, word, meaning, created_at FROM words WHERE list_id = \\$1 ORDER BY created_at ASC").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	words, err := repo.GetWordsByList(7)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "hello", words[0].Word)
	assert.Equal(t, "dünya", words[1].Meaning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetWordsByList_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	// Create rows with wrong column type to cause scan error
	rows := sqlmock.NewRows(wordColumns).
		AddRow("invalid", 7, "hello", "merhaba", time.Now())

	mock.ExpectQuery("SELECT id, list_id, word, meaning, created_at FROM words WHERE list_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	words, err := repo.GetWordsByList(7)

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_CountWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words WHERE list_id = \\$1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountWords(7)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
