package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Circulation errors
var (
	ErrMissingBorrower = errors.New("no borrower selected")
	ErrNoBooksSelected = errors.New("no books selected")
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateSwap   = errors.New("book already scanned for this swap")
	ErrTeacherSwap     = errors.New("end-of-term swaps are limited to students")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student already exists")
)

// Teacher errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrTeacherExists   = errors.New("teacher with this abbreviation already exists")
)

// Book and alias errors
var (
	ErrBookExists    = errors.New("book with this ISBN already exists")
	ErrAliasNotFound = errors.New("alias not found")
	ErrAliasExists   = errors.New("alias already registered")
	ErrBookInUse     = errors.New("book still has loan or swap records and cannot be deleted")
	ErrBorrowerInUse = errors.New("borrower still has loan or swap records and cannot be deleted")
)

// Search errors
var (
	ErrUnknownEntity = errors.New("unknown search entity")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
