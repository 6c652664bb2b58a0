package organizationerrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An organization with this email already exists",
		http.StatusConflict,
	)
)
