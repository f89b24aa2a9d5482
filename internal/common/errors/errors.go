// Package errors provides standardized error handling for the assistant service.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCatalogFileNotFound     ErrorCode = "CATALOG_FILE_NOT_FOUND"
	ErrCodeCatalogParseFailed      ErrorCode = "CATALOG_PARSE_FAILED"
	ErrCodeCatalogValidationFailed ErrorCode = "CATALOG_VALIDATION_FAILED"
	ErrCodeCatalogCacheFailed      ErrorCode = "CATALOG_CACHE_FAILED"

	ErrCodeVocabularyLoadFailed ErrorCode = "VOCABULARY_LOAD_FAILED"

	ErrCodeProductNotFound ErrorCode = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError that records the underlying error as details.
func Wrap(code ErrorCode, message string, err error) *StandardError {
	se := New(code, message)
	if err != nil {
		se.Details = err.Error()
	}
	return se
}

// WithMetadata attaches contextual metadata to the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithRetryable marks whether the operation may be retried.
func (e *StandardError) WithRetryable(retryable bool) *StandardError {
	e.Retryable = retryable
	return e
}

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	se, ok := err.(*StandardError)
	return ok && se.Code == code
}
