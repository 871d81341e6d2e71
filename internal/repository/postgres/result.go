package postgres

import (
	"database/sql"

	"memorizer/internal/repository"
)

// requireAffected maps an exec that touched no rows to repository.ErrNotFound
func requireAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
