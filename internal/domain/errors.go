package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error carrying a kind and a cause.
// It is formatted for user display only at the outermost boundary.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes for the question-processing pipeline
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeClassification  = "CLASSIFICATION_ERROR"
	ErrCodeRetrieval       = "RETRIEVAL_ERROR"
	ErrCodeQueryGeneration = "QUERY_GENERATION_ERROR"
	ErrCodeExecution       = "EXECUTION_ERROR"
	ErrCodeConfiguration   = "CONFIGURATION_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

var (
	// ErrEmptyQuestion is returned when a question is blank.
	ErrEmptyQuestion = NewDomainError(ErrCodeValidation, "question cannot be empty")
	// ErrEmptyDocument is returned when an ingested document has no text.
	ErrEmptyDocument = NewDomainError(ErrCodeValidation, "document text cannot be empty")
	// ErrUnknownClassification signals a model label outside the known set.
	ErrUnknownClassification = errors.New("unknown classification label")
	// ErrEmptyGeneratedQuery signals the model returned no usable query text.
	ErrEmptyGeneratedQuery = NewDomainError(ErrCodeQueryGeneration, "model returned an empty query")
	// ErrNotConfigured is returned when no language model credential is present.
	ErrNotConfigured = NewDomainError(ErrCodeConfiguration,
		"no language model configured: set DATACHAT_OPENAI_API_KEY before asking questions")
)

// ErrorCode extracts the domain error code from err, or INTERNAL_ERROR for
// non-domain errors.
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrCodeInternalError
}
