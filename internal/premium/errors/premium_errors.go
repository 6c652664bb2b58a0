package premiumerrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Premium schedule not found",
		http.StatusNotFound,
	)

	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Period must be an English month name and a four digit year",
		http.StatusBadRequest,
	)
)
