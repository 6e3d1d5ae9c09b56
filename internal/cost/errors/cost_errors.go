package costerrors

import (
	"net/http"

	"go-finboard/internal/shared/apperror"
)

var (
	ErrInvalidBrandID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid brand id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrCostNotFound = apperror.New(
		apperror.CodeNotFound,
		"cost not found",
		http.StatusNotFound,
	)
)
