package types

import (
	"fmt"
)

// PDFErrorCode represents categorized error codes for document generation
type PDFErrorCode string

const (
	// Input errors
	ErrCodeInvalidInput PDFErrorCode = "INVALID_INPUT"

	// Serialization invariants
	ErrCodeEncodingError PDFErrorCode = "ENCODING_ERROR"
	ErrCodeXRefError     PDFErrorCode = "XREF_ERROR"
	ErrCodeStreamError   PDFErrorCode = "STREAM_ERROR"

	// Read-back errors
	ErrCodeMalformedPDF PDFErrorCode = "MALFORMED_PDF"

	// I/O errors
	ErrCodeWriteError PDFErrorCode = "WRITE_ERROR"
)

// PDFError is a structured error type for PDF operations
type PDFError struct {
	Code    PDFErrorCode           // Error category code
	Message string                 // Human-readable message
	Cause   error                  // Underlying error (if any)
	Context map[string]interface{} // Additional context (object number, offset, rune, ...)
}

// Error implements the error interface
func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *PDFError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches a target PDFError by code
func (e *PDFError) Is(target error) bool {
	if t, ok := target.(*PDFError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context to the error and returns the same error for chaining
func (e *PDFError) WithContext(key string, value interface{}) *PDFError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewPDFError creates a new PDFError with the given code and message
func NewPDFError(code PDFErrorCode, message string) *PDFError {
	return &PDFError{
		Code:    code,
		Message: message,
	}
}

// NewPDFErrorf creates a new PDFError with a formatted message
func NewPDFErrorf(code PDFErrorCode, format string, args ...interface{}) *PDFError {
	return &PDFError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an existing error with a PDFError
func WrapError(code PDFErrorCode, message string, cause error) *PDFError {
	return &PDFError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinel errors for use with errors.Is()
var (
	ErrInvalidInput  = &PDFError{Code: ErrCodeInvalidInput}
	ErrEncodingError = &PDFError{Code: ErrCodeEncodingError}
	ErrXRefError     = &PDFError{Code: ErrCodeXRefError}
	ErrStreamError   = &PDFError{Code: ErrCodeStreamError}
	ErrMalformedPDF  = &PDFError{Code: ErrCodeMalformedPDF}
	ErrWriteError    = &PDFError{Code: ErrCodeWriteError}
)

// GetErrorCode extracts the error code from an error if it's a PDFError
func GetErrorCode(err error) (PDFErrorCode, bool) {
	if pdfErr, ok := err.(*PDFError); ok {
		return pdfErr.Code, true
	}
	return "", false
}

// IsInvariantViolation reports whether err signals a serializer bug rather
// than bad input. These never occur for a correct pipeline.
func IsInvariantViolation(err error) bool {
	if pdfErr, ok := err.(*PDFError); ok {
		switch pdfErr.Code {
		case ErrCodeEncodingError, ErrCodeXRefError, ErrCodeStreamError:
			return true
		}
	}
	return false
}
