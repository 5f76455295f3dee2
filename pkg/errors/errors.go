package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrLoanNotFound       = errors.New("loan not found")
	ErrInvalidLoanAmount  = errors.New("invalid loan amount")
	ErrInvalidDateRange   = errors.New("due date is before issue date")
	ErrInvalidDecision    = errors.New("decision must be either 'approved' or 'rejected'")
	ErrLoanAlreadyDecided = errors.New("loan has already been decided")
	ErrEvidenceMismatch   = errors.New("extracted identity details do not match authoritative records")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeLoanNotFound        = "LOAN_NOT_FOUND"
	ErrCodeInvalidLoanAmount   = "INVALID_LOAN_AMOUNT"
	ErrCodeInvalidDateRange    = "INVALID_DATE_RANGE"
	ErrCodeInvalidDecision     = "INVALID_DECISION"
	ErrCodeLoanAlreadyDecided  = "LOAN_ALREADY_DECIDED"
	ErrCodeEvidenceMismatch    = "EVIDENCE_MISMATCH"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeDatabaseError       = "DATABASE_ERROR"
	ErrCodeCacheError          = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapUserNotFound(uid string) *BusinessError {
	return NewBusinessError(
		ErrCodeUserNotFound,
		fmt.Sprintf("User %s not found", uid),
		ErrUserNotFound,
	)
}

func WrapLoanNotFound(loanID string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanNotFound,
		fmt.Sprintf("Loan with ID %s not found", loanID),
		ErrLoanNotFound,
	)
}

func WrapInvalidDateRange(issueDate, dueDate string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDateRange,
		fmt.Sprintf("Due date %s is before issue date %s", dueDate, issueDate),
		ErrInvalidDateRange,
	)
}

func WrapInvalidDecision(decision string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDecision,
		fmt.Sprintf("Invalid decision %q", decision),
		ErrInvalidDecision,
	)
}

func WrapLoanAlreadyDecided(loanID, status string) *BusinessError {
	return NewBusinessError(
		ErrCodeLoanAlreadyDecided,
		fmt.Sprintf("Loan %s has already been %s", loanID, status),
		ErrLoanAlreadyDecided,
	)
}

func WrapEvidenceMismatch(message string) *BusinessError {
	return NewBusinessError(
		ErrCodeEvidenceMismatch,
		message,
		ErrEvidenceMismatch,
	)
}

func WrapUpstreamUnavailable(upstream string, err error) *BusinessError {
	return NewBusinessError(
		ErrCodeUpstreamUnavailable,
		fmt.Sprintf("%s is unavailable", upstream),
		err,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
