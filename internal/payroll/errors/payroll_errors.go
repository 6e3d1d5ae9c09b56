package payrollerrors

import (
	"net/http"

	"go-finboard/internal/shared/apperror"
)

var (
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"action must be approve or decline",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentDate = apperror.New(
		apperror.CodeInvalidInput,
		"payment_date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidBrandID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid brand id",
		http.StatusBadRequest,
	)
	ErrInvalidReviewer = apperror.New(
		apperror.CodeInvalidInput,
		"invalid reviewer id",
		http.StatusBadRequest,
	)
	ErrSalaryPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary payment not found",
		http.StatusNotFound,
	)
	ErrPendingCostNotFound = apperror.New(
		apperror.CodeNotFound,
		"pending cost not found",
		http.StatusNotFound,
	)
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"pending cost has already been processed",
		http.StatusConflict,
	)
)
