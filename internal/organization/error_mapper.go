package organization

import (
	"errors"

	organizationerrors "insuregate/internal/organization/errors"
	"insuregate/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrOrganizationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return organizationerrors.ErrOrganizationEmailAlreadyExists
	}

	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", 500)
}
