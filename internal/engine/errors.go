package engine

import (
	"errors"
	"fmt"
)

// QueryError represents an error detected during question evaluation.
//
// Query errors include:
//   - Unknown question: the question id is not one of q1..q5
//   - Bad altitude: a non-numeric altitude in a row a question must measure
//
// QueryError includes structured fields for diagnostics.
type QueryError struct {
	// Code identifies the error category.
	Code QueryErrorCode

	// Message is a human-readable description.
	Message string

	// Question identifies the affected question, if known.
	Question string

	// Details contains additional context.
	Details map[string]string
}

// QueryErrorCode categorizes query errors.
type QueryErrorCode string

const (
	// ErrCodeUnknownQuestion indicates the question id is not recognized.
	// Raised before any table access.
	ErrCodeUnknownQuestion QueryErrorCode = "UNKNOWN_QUESTION"

	// ErrCodeBadAltitude indicates an altitude that must be measured is
	// not numeric. Coercing to a default would silently corrupt the
	// statistic, so this is fatal for the invocation.
	ErrCodeBadAltitude QueryErrorCode = "BAD_ALTITUDE"
)

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Question != "" {
		return fmt.Sprintf("%s: %s (question=%s)", e.Code, e.Message, e.Question)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownQuestionError returns true if the error is an unknown-question
// error. Uses errors.As to handle wrapped errors.
func IsUnknownQuestionError(err error) bool {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeUnknownQuestion
	}
	return false
}

// IsBadAltitudeError returns true if the error is an altitude coercion
// error. Uses errors.As to handle wrapped errors.
func IsBadAltitudeError(err error) bool {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Code == ErrCodeBadAltitude
	}
	return false
}

// NewUnknownQuestionError creates a QueryError for an unrecognized id.
func NewUnknownQuestionError(question string) *QueryError {
	return &QueryError{
		Code:     ErrCodeUnknownQuestion,
		Message:  fmt.Sprintf("unknown question %q: must be one of %v", question, Questions()),
		Question: question,
	}
}

// NewBadAltitudeError creates a QueryError for a non-numeric altitude.
func NewBadAltitudeError(question, airportID string, cause error) *QueryError {
	return &QueryError{
		Code:     ErrCodeBadAltitude,
		Message:  cause.Error(),
		Question: question,
		Details: map[string]string{
			"airport_id": airportID,
		},
	}
}
