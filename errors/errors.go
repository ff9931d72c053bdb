package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an application error category in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_INVALID_STATE    ErrorCode = 1004

	ErrorCode_CALL_IN_PROGRESS ErrorCode = 2000
	ErrorCode_NO_ACTIVE_CALL   ErrorCode = 2001
	ErrorCode_EMPTY_HISTORY    ErrorCode = 2002
	ErrorCode_UNKNOWN_EVENT    ErrorCode = 2003

	ErrorCode_VENDOR_REJECTED    ErrorCode = 3000
	ErrorCode_VENDOR_UNREACHABLE ErrorCode = 3001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:            "HTTP_OK",
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:   "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:          "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:    "INVALID_PAYLOAD",
	ErrorCode_INVALID_STATE:      "INVALID_STATE",
	ErrorCode_CALL_IN_PROGRESS:   "CALL_IN_PROGRESS",
	ErrorCode_NO_ACTIVE_CALL:     "NO_ACTIVE_CALL",
	ErrorCode_EMPTY_HISTORY:      "EMPTY_HISTORY",
	ErrorCode_UNKNOWN_EVENT:      "UNKNOWN_EVENT",
	ErrorCode_VENDOR_REJECTED:    "VENDOR_REJECTED",
	ErrorCode_VENDOR_UNREACHABLE: "VENDOR_UNREACHABLE",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}

// MarshalText renders the code by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// AppError is the error type surfaced to API clients
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrInvalidState(message string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_INVALID_STATE,
		Message:  message,
	}
}

// Call Errors
func ErrCallInProgress(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_CALL_IN_PROGRESS,
		Message:  "A call is already in progress",
	}
}

func ErrNoActiveCall() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NO_ACTIVE_CALL,
		Message:  "No call to end",
	}
}

func ErrEmptyHistory() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_EMPTY_HISTORY,
		Message:  "No calls to export",
	}
}

func ErrUnknownEvent(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_UNKNOWN_EVENT,
		Message:  "Unknown call event",
	}
}

func ErrNoAgentSelected() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_INVALID_STATE,
		Message:  "Please select an agent first",
	}
}

// Vendor Errors
func ErrVendorRejected(message string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_VENDOR_REJECTED,
		Message:  message,
	}
}

func ErrVendorUnreachable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_VENDOR_UNREACHABLE,
		Message:  "Voice platform is unreachable",
	}
}
