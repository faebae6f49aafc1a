package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Request errors
	ErrorCodeInvalidRequest  ErrorCode = "VAL_002"
	ErrorCodePayloadTooLarge ErrorCode = "VAL_003"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_002"`
	Message  string        `json:"message" example:"Invalid request"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail. Client errors are warnings, server
// errors are errors.
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	severity := ErrorSeverityError
	switch code {
	case ErrorCodeResourceNotFound, ErrorCodeInvalidRequest, ErrorCodePayloadTooLarge:
		severity = ErrorSeverityWarning
	case ErrorCodeDatabaseError:
		severity = ErrorSeverityCritical
	}
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: severity,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}
