package errors

import (
	"net/http"

	"atelier/internal/errors"
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
	// Authentication-related errors
	ErrAccessDenied = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_DENIED",
		"Access denied",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"Failed to issue token",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests",
		"",
	)

	// Ownership violations
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Access denied",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrDesignerNotFound = NewBaseError(
		http.StatusNotFound,
		"DESIGNER_NOT_FOUND",
		"Designer not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"Username or email already registered",
		"",
	)

	ErrWalletAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"WALLET_ADDRESS_REQUIRED",
		"Wallet address is required",
		"",
	)

	// Collection-related errors
	ErrCollectionNotFound = NewBaseError(
		http.StatusNotFound,
		"COLLECTION_NOT_FOUND",
		"Collection not found",
		"",
	)

	ErrCollectionFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"REQUIRED_FIELDS_MISSING",
		"All fields are required",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrRequiredFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"REQUIRED_FIELDS_MISSING",
		"Required fields are missing",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Invalid filter value",
		"",
	)

	// Size-related errors
	ErrSizeNotFound = NewBaseError(
		http.StatusNotFound,
		"SIZE_NOT_FOUND",
		"Size not found",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity is required and must be greater than 0",
		"",
	)

	// NFT-related errors
	ErrNFTNotFound = NewBaseError(
		http.StatusNotFound,
		"NFT_NOT_FOUND",
		"NFT not found",
		"",
	)

	ErrNFTNotFoundOrUnauthorized = NewBaseError(
		http.StatusNotFound,
		"NFT_NOT_FOUND",
		"NFT not found or unauthorized",
		"",
	)

	ErrNoNFTsForProduct = NewBaseError(
		http.StatusNotFound,
		"NFT_NOT_FOUND",
		"No NFTs found for this product",
		"",
	)

	ErrNFTAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"NFT_ALREADY_EXISTS",
		"NFT already saved",
		"",
	)

	ErrNFTFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"REQUIRED_FIELDS_MISSING",
		"Token address and wallet address are required.",
		"",
	)

	ErrInvalidActiveFlag = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"active must be \"yes\" or \"no\"",
		"",
	)

	ErrInvalidListingTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LISTING_TRANSITION",
		"NFT cannot change to the requested state",
		"",
	)

	// Chain reconciliation errors
	ErrChainUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CHAIN_UNAVAILABLE",
		"Chain RPC unavailable",
		"",
	)

	// Image-related errors
	ErrUnsupportedImage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE",
		"Only image uploads are allowed",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image exceeds the size limit",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
