package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError(ErrCodeValidation, "question cannot be empty")
	assert.Equal(t, "[VALIDATION_ERROR] question cannot be empty", err.Error())
}

func TestDomainError_ErrorWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDomainErrorWithCause(ErrCodeExecution, "warehouse rejected the query", cause)

	assert.Contains(t, err.Error(), "EXECUTION_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestErrorCode(t *testing.T) {
	t.Run("extracts code from domain errors", func(t *testing.T) {
		assert.Equal(t, ErrCodeRetrieval, ErrorCode(NewDomainError(ErrCodeRetrieval, "index failure")))
	})

	t.Run("extracts code from wrapped domain errors", func(t *testing.T) {
		wrapped := fmt.Errorf("processing question: %w", ErrNotConfigured)
		assert.Equal(t, ErrCodeConfiguration, ErrorCode(wrapped))
	})

	t.Run("defaults to internal error", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternalError, ErrorCode(errors.New("boom")))
	})
}
