package salarybanderrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrSalaryBandNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary band not found",
		http.StatusNotFound,
	)

	ErrInvalidSalaryRange = apperror.New(
		apperror.CodeInvalidInput,
		"Minimum salary must be strictly lower than maximum salary",
		http.StatusBadRequest,
	)

	ErrOverlappingBand = apperror.New(
		apperror.CodeConflict,
		"Salary range overlaps an existing band",
		http.StatusConflict,
	)

	ErrBandHasDependents = apperror.New(
		apperror.CodeHasDependents,
		"Salary band has plan mappings and cannot be deleted",
		http.StatusConflict,
	)
)
