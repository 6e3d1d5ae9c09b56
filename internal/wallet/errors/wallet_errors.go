package walleterrors

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
	ErrInvalidWalletID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid wallet id",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrWalletNotFound = apperror.New(
		apperror.CodeNotFound,
		"wallet not found",
		http.StatusNotFound,
	)
	ErrSameWallet = apperror.New(
		apperror.CodeInvalidInput,
		"source and destination wallet must differ",
		http.StatusBadRequest,
	)
	ErrInvalidMonthlyBudget = apperror.New(
		apperror.CodeInvalidInput,
		"monthly_budget must be greater than zero",
		http.StatusBadRequest,
	)
)
