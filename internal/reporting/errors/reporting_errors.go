package reportingerrors

import (
	"net/http"

	"go-finboard/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
)
