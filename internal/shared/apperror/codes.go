package apperror

// Stable machine-readable codes carried in the response envelope. Handlers
// translate them to HTTP statuses through ToHTTP.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	// CodeInvalidState marks operations against a settled record: reviewing
	// an already processed pending cost, paying an inactive employee.
	CodeInvalidState = "INVALID_STATE"

	CodeInternalError = "INTERNAL_ERROR"
)
