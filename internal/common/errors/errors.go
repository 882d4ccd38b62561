// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Career analysis error codes. Business codes are thrown as BPMN errors,
// technical codes are retried.
const (
	ErrCodeProfileValidationFailed ErrorCode = "PROFILE_VALIDATION_FAILED"
	ErrCodeAnalysisQuotaExceeded   ErrorCode = "ANALYSIS_QUOTA_EXCEEDED"
	ErrCodeQuotaCheckFailed        ErrorCode = "QUOTA_CHECK_FAILED"
	ErrCodeUsageRecordFailed       ErrorCode = "USAGE_RECORD_FAILED"

	ErrCodeKnowledgeBaseLoadFailed ErrorCode = "KNOWLEDGE_BASE_LOAD_FAILED"
	ErrCodeEnrichmentUnavailable   ErrorCode = "ENRICHMENT_UNAVAILABLE"

	ErrCodeCacheError    ErrorCode = "CACHE_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeTimeout       ErrorCode = "TIMEOUT"
	ErrCodeParseError    ErrorCode = "PARSE_ERROR"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
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

// WithMetadata attaches a key to the error and returns it for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileValidationFailedError reports a profile rejected at the intake boundary.
func NewProfileValidationFailedError(details string) *StandardError {
	return newError(ErrCodeProfileValidationFailed, "Career profile failed validation", details, false)
}

// NewAnalysisQuotaExceededError reports a plan whose analysis allowance is used up.
func NewAnalysisQuotaExceededError(plan string, used, limit int) *StandardError {
	return newError(ErrCodeAnalysisQuotaExceeded, "Analysis quota exceeded",
		fmt.Sprintf("plan: %s, used: %d, limit: %d", plan, used, limit), false).
		WithMetadata("plan", plan).
		WithMetadata("analysesUsed", used)
}

func NewQuotaCheckFailedError(err error) *StandardError {
	return newError(ErrCodeQuotaCheckFailed, "Database error during quota check", err.Error(), true)
}

func NewUsageRecordFailedError(err error) *StandardError {
	return newError(ErrCodeUsageRecordFailed, "Failed to record analysis usage", err.Error(), true)
}

func NewKnowledgeBaseLoadFailedError(path string, err error) *StandardError {
	return newError(ErrCodeKnowledgeBaseLoadFailed, "Knowledge base could not be loaded",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), false)
}

func NewEnrichmentUnavailableError(provider string, err error) *StandardError {
	return newError(ErrCodeEnrichmentUnavailable, fmt.Sprintf("Enrichment provider '%s' unavailable", provider), err.Error(), true)
}

func NewCacheError(err error) *StandardError {
	return newError(ErrCodeCacheError, "Cache operation failed", err.Error(), true)
}

func NewDatabaseError(err error) *StandardError {
	return newError(ErrCodeDatabaseError, "Database operation failed", err.Error(), true)
}

func NewTimeoutError(operation string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Operation '%s' timed out", operation), err.Error(), true)
}

func NewParseError(err error) *StandardError {
	return newError(ErrCodeParseError, "Failed to parse job variables", err.Error(), false)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternalError, "Unexpected error", err.Error(), false)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal codes to the codes modelled on boundary events.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeProfileValidationFailed: "PROFILE_VALIDATION_FAILED",
	ErrCodeAnalysisQuotaExceeded:   "ANALYSIS_QUOTA_EXCEEDED",
	ErrCodeQuotaCheckFailed:        "QUOTA_CHECK_FAILED",
	ErrCodeUsageRecordFailed:       "USAGE_RECORD_FAILED",
	ErrCodeKnowledgeBaseLoadFailed: "KNOWLEDGE_BASE_LOAD_FAILED",
	ErrCodeEnrichmentUnavailable:   "ENRICHMENT_UNAVAILABLE",
	ErrCodeCacheError:              "CACHE_ERROR",
	ErrCodeDatabaseError:           "DATABASE_ERROR",
	ErrCodeTimeout:                 "TIMEOUT",
	ErrCodeParseError:              "PARSE_ERROR",
	ErrCodeInternalError:           "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeQuotaCheckFailed,
		ErrCodeUsageRecordFailed,
		ErrCodeCacheError,
		ErrCodeDatabaseError,
		ErrCodeEnrichmentUnavailable:
		return 3

	case ErrCodeTimeout:
		return 2

	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "QUOTA") || strings.Contains(codeStr, "USAGE"):
		return "ENTITLEMENT"
	case strings.Contains(codeStr, "PROFILE") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "KNOWLEDGE_BASE") || strings.Contains(codeStr, "ENRICHMENT"):
		return "ENGINE"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "CACHE"):
		return "STORAGE"
	case strings.Contains(codeStr, "TIMEOUT"):
		return "TIMEOUT"
	default:
		return "OTHER"
	}
}
