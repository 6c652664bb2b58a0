package insurer

import (
	"errors"
	"net/http"

	insurererrors "insuregate/internal/insurer/errors"
	"insuregate/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapInsurerError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return insurererrors.ErrInsurerNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return insurererrors.ErrInsurerCodeAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}

func mapPlanError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return insurererrors.ErrPlanNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return insurererrors.ErrPlanCodeAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}
