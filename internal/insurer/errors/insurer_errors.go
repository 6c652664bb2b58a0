package insurererrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrInsurerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Insurer not found",
		http.StatusNotFound,
	)

	ErrInsurerCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An insurer with this code already exists",
		http.StatusConflict,
	)

	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Plan not found",
		http.StatusNotFound,
	)

	ErrPlanCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A plan with this code already exists for this insurer",
		http.StatusConflict,
	)

	ErrPlanInactive = apperror.New(
		apperror.CodeInvalidState,
		"Plan is not active",
		http.StatusUnprocessableEntity,
	)
)
