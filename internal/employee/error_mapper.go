package employee

import (
	"errors"
	"net/http"

	employeeerrors "insuregate/internal/employee/errors"
	"insuregate/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmployeeEmailAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}
