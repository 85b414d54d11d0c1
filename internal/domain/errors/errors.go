package errors

import (
	"net/http"

	"batulens/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Visit-store errors
	ErrWisataNotFound = NewBaseError(
		http.StatusNotFound,
		"WISATA_NOT_FOUND",
		"Data wisata tidak ditemukan",
		"",
	)

	ErrWisataAlreadyExists = NewBaseError(
		http.StatusConflict,
		"WISATA_ALREADY_EXISTS",
		"Data wisata sudah ada",
		"",
	)

	ErrInvalidVisitData = NewBaseError(
		http.StatusBadRequest,
		"INVALID_VISIT_DATA",
		"Data tidak valid",
		"",
	)

	// Upload errors
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"Ukuran file melebihi batas 50MB",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"Format file harus CSV, XLSX, atau XLS",
		"",
	)

	ErrMissingColumns = NewBaseError(
		http.StatusBadRequest,
		"MISSING_COLUMNS",
		"Kolom wajib tidak lengkap (wisata, rating, review_text, date)",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email atau password salah",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Pengguna tidak ditemukan",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email sudah terdaftar",
		"",
	)

	// Upstream analytics errors (failure modes of the upstream analytics API)
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"Layanan analisis tidak tersedia",
		"",
	)

	ErrUpstreamAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"UPSTREAM_AUTH_REQUIRED",
		"Sesi layanan analisis kedaluwarsa",
		"",
	)

	ErrUpstreamBadPayload = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_BAD_PAYLOAD",
		"Invalid response format",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input tidak valid",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Filter harus salah satu dari all, high, medium, low",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure as a 500-level
// application error while keeping the cause in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", message, details)
}
