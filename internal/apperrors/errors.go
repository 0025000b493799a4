package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrConfiguration indicates that a required well-known account is not mapped or missing.
var ErrConfiguration = errors.New("configuration error")

// ErrUnbalancedEntry indicates that the debits of a journal entry do not equal its credits.
var ErrUnbalancedEntry = errors.New("unbalanced journal entry")

// ErrTransactionFailure indicates the store aborted a unit of work. Nothing was applied.
var ErrTransactionFailure = errors.New("transaction failure")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is used for failures that have no better classification.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports that the named resource does not exist.
func NewNotFoundError(resource string) error {
	return NewAppError(http.StatusNotFound, resource+" not found", ErrNotFound)
}

// NewValidationError formats a validation failure that matches ErrValidation.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewConfigurationError formats a configuration failure that matches ErrConfiguration.
func NewConfigurationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// NewUnbalancedEntryError reports the totals of an entry that does not net to zero.
func NewUnbalancedEntryError(debits, credits decimal.Decimal) error {
	return fmt.Errorf("%w: total debit %s does not equal total credit %s", ErrUnbalancedEntry, debits.StringFixed(2), credits.StringFixed(2))
}

// NewTransactionFailure wraps a store failure so that it matches ErrTransactionFailure
// while keeping the underlying cause inspectable.
func NewTransactionFailure(op string, err error) error {
	return NewAppError(http.StatusInternalServerError, op, fmt.Errorf("%w: %w", ErrTransactionFailure, err))
}
