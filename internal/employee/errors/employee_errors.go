package employeeerrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this email already exists",
		http.StatusConflict,
	)

	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is inactive",
		http.StatusUnprocessableEntity,
	)

	ErrEmptyRoster = apperror.New(
		apperror.CodeInvalidInput,
		"Roster file contains no rows",
		http.StatusBadRequest,
	)

	ErrInvalidRosterHeader = apperror.New(
		apperror.CodeInvalidInput,
		"Roster file header must contain name, email and salary columns",
		http.StatusBadRequest,
	)
)
