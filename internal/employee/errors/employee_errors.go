package employeeerrors

import (
	"net/http"

	"go-finboard/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not active",
		http.StatusConflict,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"monthly_salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be formatted as YYYY-MM-DD and after start_date",
		http.StatusBadRequest,
	)
	ErrInvalidBrandID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid brand id",
		http.StatusBadRequest,
	)
	ErrDuplicateEmployee = apperror.New(
		apperror.CodeConflict,
		"an employee with this name already exists",
		http.StatusConflict,
	)
)
