package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a failure independently of its message. A code is
// itself an error, so errors.Is(err, ErrDepthExceeded) matches any
// RichTextError carrying that code.
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	ErrDocumentDecode ErrorCode = "DOCUMENT_DECODE"

	ErrMarkRendererMissing ErrorCode = "MARK_RENDERER_MISSING"
	ErrDepthExceeded       ErrorCode = "DEPTH_EXCEEDED"
	ErrRenderOutput        ErrorCode = "RENDER_OUTPUT"

	ErrFormatNotFound ErrorCode = "FORMAT_NOT_FOUND"
)

func (c ErrorCode) Error() string { return string(c) }

// Category groups codes by the stage that failed.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryRender   Category = "render"
)

// Category reports which stage c belongs to.
func (c ErrorCode) Category() Category {
	switch {
	case strings.HasPrefix(string(c), "CONFIG_"):
		return CategoryConfig
	case c == ErrDocumentDecode || c == ErrInvalidInput:
		return CategoryDocument
	case c == ErrMarkRendererMissing || c == ErrDepthExceeded || c == ErrRenderOutput || c == ErrFormatNotFound:
		return CategoryRender
	default:
		return CategoryGeneral
	}
}

// RichTextError is a coded error with optional details and cause.
type RichTextError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *RichTextError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *RichTextError) Unwrap() error {
	return e.Wrapped
}

// Is matches a bare ErrorCode or another RichTextError with the same code.
func (e *RichTextError) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *RichTextError:
		return e.Code == t.Code
	}
	return false
}

// WithDetail records key for callers and returns e.
func (e *RichTextError) WithDetail(key string, value interface{}) *RichTextError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Detail returns one recorded detail.
func (e *RichTextError) Detail(key string) (interface{}, bool) {
	v, ok := e.Details[key]
	return v, ok
}

func build(code ErrorCode, message string, wrapped error) *RichTextError {
	return &RichTextError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

func New(code ErrorCode, message string) *RichTextError {
	return build(code, message, nil)
}

func Newf(code ErrorCode, format string, args ...interface{}) *RichTextError {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap returns nil when err is nil, so it can wrap a call's result directly.
func Wrap(err error, code ErrorCode, message string) *RichTextError {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RichTextError {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// IsErrorCode reports whether the outermost RichTextError in err's chain has
// code. It is false when the chain holds no RichTextError, even for ErrUnknown.
func IsErrorCode(err error, code ErrorCode) bool {
	var rtErr *RichTextError
	if errors.As(err, &rtErr) {
		return rtErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the outermost RichTextError in err's chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var rtErr *RichTextError
	if errors.As(err, &rtErr) {
		return rtErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost RichTextError, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	var rtErr *RichTextError
	if errors.As(err, &rtErr) {
		return rtErr.Details
	}
	return nil
}

// Exit statuses follow sysexits.h.
const (
	ExitFailure  = 1
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitConfig   = 78
)

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsErrorCode(err, ErrNotFound):
		return ExitNoInput
	}
	switch GetErrorCode(err).Category() {
	case CategoryConfig:
		return ExitConfig
	case CategoryDocument:
		return ExitDataErr
	case CategoryRender:
		return ExitSoftware
	default:
		return ExitFailure
	}
}
