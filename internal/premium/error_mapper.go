package premium

import (
	"database/sql"
	"errors"
	"net/http"

	premiumerrors "insuregate/internal/premium/errors"
	"insuregate/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return premiumerrors.ErrScheduleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// A concurrent calculate run already inserted this period's row; the
		// upsert path makes this unreachable in practice
		return apperror.Wrap(err, apperror.CodeConflict, "Premium schedule already exists for this period", http.StatusConflict)
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}
