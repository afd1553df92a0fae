package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad                ErrorCode = "CONFIG_LOAD"
	ErrConfigParse               ErrorCode = "CONFIG_PARSE"
	ErrConfigEnvMissing          ErrorCode = "CONFIG_ENV_MISSING"
	ErrConfigOverride            ErrorCode = "CONFIG_OVERRIDE"
	ErrConfigPlatformUnsupported ErrorCode = "CONFIG_PLATFORM_UNSUPPORTED"

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileAccess   ErrorCode = "PROFILE_ACCESS"

	// Selection errors, recovered locally by re-prompting
	ErrSelectionInvalid    ErrorCode = "SELECTION_INVALID"
	ErrSelectionOutOfRange ErrorCode = "SELECTION_OUT_OF_RANGE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileDelete   ErrorCode = "FILE_DELETE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// Kind groups error codes into the three ways a failure is handled:
// configuration and I/O errors end the run, user input errors re-prompt.
type Kind int

const (
	KindIO Kind = iota
	KindConfiguration
	KindUserInput
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUserInput:
		return "user-input"
	default:
		return "io"
	}
}

var codeKinds = map[ErrorCode]Kind{
	ErrConfigLoad:                KindConfiguration,
	ErrConfigParse:               KindConfiguration,
	ErrConfigEnvMissing:          KindConfiguration,
	ErrConfigOverride:            KindConfiguration,
	ErrConfigPlatformUnsupported: KindConfiguration,
	ErrInvalidInput:              KindUserInput,
	ErrProfileNotFound:           KindUserInput,
	ErrSelectionInvalid:          KindUserInput,
	ErrSelectionOutOfRange:       KindUserInput,
}

// Kind returns the kind of a code. Codes without an explicit kind are I/O.
func (c ErrorCode) Kind() Kind {
	if k, ok := codeKinds[c]; ok {
		return k
	}
	return KindIO
}

// ModError represents a structured error with code and details
type ModError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModError) Is(target error) bool {
	var targetErr *ModError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind returns the handling category of the error
func (e *ModError) Kind() Kind {
	return e.Code.Kind()
}

// New creates a new ModError with the given code and message
func New(code ErrorCode, message string) *ModError {
	return &ModError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModError {
	return &ModError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModError
func Wrap(err error, code ErrorCode, message string) *ModError {
	if err == nil {
		return nil
	}
	return &ModError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModError {
	if err == nil {
		return nil
	}
	return &ModError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModError) WithDetail(key string, value interface{}) *ModError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var modErr *ModError
	if errors.As(err, &modErr) {
		return modErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModError
func GetErrorCode(err error) ErrorCode {
	var modErr *ModError
	if errors.As(err, &modErr) {
		return modErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModError
func GetErrorDetails(err error) map[string]interface{} {
	var modErr *ModError
	if errors.As(err, &modErr) {
		return modErr.Details
	}
	return nil
}

// KindOf classifies any error. Errors that are not a ModError count as I/O.
func KindOf(err error) Kind {
	var modErr *ModError
	if errors.As(err, &modErr) {
		return modErr.Kind()
	}
	return KindIO
}

// UserMessage returns the human readable part of an error, without the code
// prefix. Used when the error is shown to the user instead of logged.
func UserMessage(err error) string {
	var modErr *ModError
	if errors.As(err, &modErr) {
		return modErr.Message
	}
	return err.Error()
}
