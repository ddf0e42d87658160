package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrCreateFailed     = errors.New("create failed")

	// Storage errors
	ErrInitializationFailed = errors.New("schema initialization failed")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student Errors
var (
	ErrStudentNotFound       = NewResourceNotFoundError("Student not found")
	ErrNoStudents            = NewResourceNotFoundError("No students found")
	ErrNoTAs                 = NewResourceNotFoundError("No TAs found")
	ErrNoStudentsForCourse   = NewResourceNotFoundError("No students found for this course")
	ErrStudentNotUpdated     = NewResourceNotFoundError("Student not found or no changes made")
	ErrUnableToCreateStudent = NewCreateFailedError("Unable to create student")
)

// Course Errors
var (
	ErrCourseNotFound       = NewResourceNotFoundError("Course not found")
	ErrNoCourses            = NewResourceNotFoundError("No courses found")
	ErrCourseNotUpdated     = NewResourceNotFoundError("Course not found or no changes made")
	ErrUnableToCreateCourse = NewCreateFailedError("Unable to create course")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewCreateFailedError creates a new custom error for a failed insert with a message
func NewCreateFailedError(message string) error {
	return &CustomError{
		Err:     ErrCreateFailed,
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

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
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
