// Package errors provides standardized error handling for the launch assistant.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeCatalogLoadFailed   ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogSchemaFailed ErrorCode = "CATALOG_SCHEMA_FAILED"

	ErrCodeAITimeout          ErrorCode = "AI_TIMEOUT"
	ErrCodeAIGenerationFailed ErrorCode = "AI_GENERATION_FAILED"

	ErrCodeEmailSendFailed ErrorCode = "EMAIL_SEND_FAILED"
	ErrCodeCRMSyncFailed   ErrorCode = "CRM_SYNC_FAILED"

	ErrCodeMilestoneStoreFailed ErrorCode = "MILESTONE_STORE_FAILED"
	ErrCodeMilestoneNotFound    ErrorCode = "MILESTONE_NOT_FOUND"

	ErrCodeLeadInsertFailed         ErrorCode = "LEAD_INSERT_FAILED"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
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

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a non-retryable catalog read error.
// Callers are expected to fail soft (treat the catalog as absent).
func NewCatalogLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Failed to load catalog file",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogSchemaFailedError creates a non-retryable catalog schema error.
func NewCatalogSchemaFailedError(path, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogSchemaFailed,
		Message:   "Catalog file does not match expected schema",
		Details:   fmt.Sprintf("path: %s, %s", path, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAITimeoutError creates a retryable AI backend timeout error.
func NewAITimeoutError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAITimeout,
		Message:   "AI backend call timed out",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAIGenerationFailedError creates a retryable AI generation error.
func NewAIGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAIGenerationFailed,
		Message:   "AI generation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable email transport error.
func NewEmailSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "Failed to send email",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCRMSyncFailedError creates a retryable CRM sync error.
func NewCRMSyncFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCRMSyncFailed,
		Message:   "Failed to sync contact to CRM",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMilestoneStoreFailedError creates a retryable milestone storage error.
func NewMilestoneStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMilestoneStoreFailed,
		Message:   "Milestone store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMilestoneNotFoundError creates a non-retryable lookup error.
func NewMilestoneNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMilestoneNotFound,
		Message:   "Milestone not found",
		Details:   fmt.Sprintf("milestoneId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLeadInsertFailedError creates a retryable lead persistence error.
func NewLeadInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLeadInsertFailed,
		Message:   "Failed to persist lead record",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Helpers
// ==========================

// IsRetryable reports whether err is a StandardError marked retryable.
func IsRetryable(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Retryable
	}
	return false
}

// CodeOf extracts the error code from a StandardError, or UNKNOWN_ERROR.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return "UNKNOWN_ERROR"
}
