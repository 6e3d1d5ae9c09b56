package cashtransactionerrors

import (
	"net/http"

	"go-finboard/internal/shared/apperror"
)

var (
	ErrInvalidSection = apperror.New(
		apperror.CodeInvalidInput,
		"section must be one of operating, investing, financing",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be a non-zero decimal",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"transaction_date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidBrandID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid brand id",
		http.StatusBadRequest,
	)
)
