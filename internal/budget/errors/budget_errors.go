package budgeterrors

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
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidBudgetLimit = apperror.New(
		apperror.CodeInvalidInput,
		"budget_limit must be greater than zero",
		http.StatusBadRequest,
	)
	ErrBudgetNotFound = apperror.New(
		apperror.CodeNotFound,
		"monthly budget not found",
		http.StatusNotFound,
	)
)
