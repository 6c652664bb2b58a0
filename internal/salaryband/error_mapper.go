package salaryband

import (
	"errors"
	"net/http"

	salarybanderrors "insuregate/internal/salaryband/errors"
	"insuregate/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarybanderrors.ErrSalaryBandNotFound
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", http.StatusInternalServerError)
}
