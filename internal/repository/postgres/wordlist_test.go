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

var listColumns = []string{"id", "user_id", "name", "created_at", "count"}

func TestWordListRepo_CreateList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	mock.ExpectQuery("INSERT INTO word_lists \\(user_id, name\\) VALUES \\(\\$1, \\$2\\) RETURNING id").
		WithArgs(int64(123), "Animals").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.CreateList(123, "Animals")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordListRepo_CreateList_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	mock.ExpectQuery("INSERT INTO word_lists").
		WithArgs(int64(123), "Animals").
		WillReturnError(fmt.Errorf("fk violation"))

	id, err := repo.CreateList(123, "Animals")

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordListRepo_RenameList(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		execError    error
		expectedErr  error
		expectError  bool
	}{
		{
			name:         "renamed",
			rowsAffected: 1,
		},
		{
			name:         "list of another user",
			rowsAffected: 0,
			expectedErr:  repository.ErrNotFound,
			expectError:  true,
		},
		{
			name:        "database error",
			execError:   fmt.Errorf("db error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordListRepo(db)

			exp := mock.ExpectExec("UPDATE word_lists SET name = \\$1 WHERE id = \\$2 AND user_id = \\$3").
				WithArgs("Fruits", int64(7), int64(123))
			if tt.execError != nil {
				exp.WillReturnError(tt.execError)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			err = repo.RenameList(123, 7, "Fruits")

			if tt.expectError {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordListRepo_DeleteList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	mock.ExpectExec("DELETE FROM word_lists WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(7), int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteList(123, 7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordListRepo_DeleteList_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	mock.ExpectExec("DELETE FROM word_lists").
		WithArgs(int64(7), int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteList(123, 7)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordListRepo_GetList(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name: "list found",
			mockRows: sqlmock.NewRows(listColumns).
				AddRow(7, 123, "Animals", time.Now(), 12),
		},
		{
			name:        "list not found",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name: "scan error",
			mockRows: sqlmock.NewRows(listColumns).
				AddRow("invalid", 123, "Animals", time.Now(), 12),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordListRepo(db)

			query := "SELECT l.id, l.user_id, l.name, l.created_at, COUNT\\(w.id\\) FROM word_lists l LEFT JOIN words w ON w.list_id = l.id WHERE l.id = \\$1 AND l.user_id = \\$2"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(7), int64(123)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(7), int64(123)).WillReturnRows(tt.mockRows)
			}

			list, err := repo.GetList(123, 7)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, list)
			} else {
				assert.NotNil(t, list)
				assert.Equal(t, "Animals", list.Name)
				assert.Equal(t, 12, list.WordCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordListRepo_GetLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	rows := sqlmock.NewRows(listColumns).
		AddRow(8, 123, "Verbs", time.Now(), 0).
		AddRow(7, 123, "Animals", time.Now().AddDate(0, 0, -1), 12)

	mock.ExpectQuery("SELECT l.id, l.user_id, l.name, l.created_at, COUNT\\(w.id\\) FROM word_lists l").
		WithArgs(int64(123), 7, 0).
		WillReturnRows(rows)

	lists, err := repo.GetLists(123, 7, 0)

	assert.NoError(t, err)
	assert.Len(t, lists, 2)
	assert.Equal(t, "Verbs", lists[0].Name)
	assert.Equal(t, 0, lists[0].WordCount)
	assert.Equal(t, 12, lists[1].WordCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordListRepo_GetLists_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	mock.ExpectQuery("SELECT l.id").
		WithArgs(int64(123), 7, 7).
		WillReturnError(fmt.Errorf("query error"))

	lists, err := repo.GetLists(123, 7, 7)

	assert.Error(t, err)
	assert.Nil(t, lists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordListRepo_CountLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordListRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM word_lists WHERE user_id = \\$1").
		WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := repo.CountLists(123)

	assert.NoError(t, err)
	assert.Equal(t, 9, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
