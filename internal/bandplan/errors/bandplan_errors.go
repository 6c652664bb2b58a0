package bandplanerrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrMappingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Plan mapping not found",
		http.StatusNotFound,
	)

	ErrBandNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary band not found",
		http.StatusNotFound,
	)

	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Plan not found",
		http.StatusNotFound,
	)

	ErrPlanInactive = apperror.New(
		apperror.CodeInvalidState,
		"Plan is not active and cannot be mapped",
		http.StatusUnprocessableEntity,
	)
)
