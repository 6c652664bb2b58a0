package paymenterrors

import (
	"net/http"

	"insuregate/internal/shared/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment session not found",
		http.StatusNotFound,
	)

	ErrNoPendingPremiums = apperror.New(
		apperror.CodeInvalidState,
		"No pending premiums to pay for this period",
		http.StatusUnprocessableEntity,
	)

	ErrAlreadyResolved = apperror.New(
		apperror.CodeInvalidState,
		"Payment session is already resolved",
		http.StatusConflict,
	)

	ErrSessionNotInitiable = apperror.New(
		apperror.CodeInvalidState,
		"Payment session cannot be initiated from its current state",
		http.StatusConflict,
	)

	ErrInvalidWebhookSecret = apperror.New(
		apperror.CodeUnauthorized,
		"Webhook secret is missing or invalid",
		http.StatusUnauthorized,
	)

	ErrInvalidOutcome = apperror.New(
		apperror.CodeInvalidInput,
		"Outcome must be success or failure",
		http.StatusBadRequest,
	)
)
