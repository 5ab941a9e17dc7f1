package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode classifies failures the library can produce.
type ErrorCode int

const (
	// Core error codes.
	Unknown ErrorCode = iota
	InvalidInput
	ValidationFailed
	ResourceNotFound
	Canceled

	// Search errors.
	EvaluationFailed
	CompilationFailed

	// Storage errors.
	CacheFailed
)

// Error is a structured error carrying a code and optional context fields.
type Error struct {
	code     ErrorCode
	message  string
	original error
	fields   Fields
}

// Fields carries structured data about the error.
type Fields map[string]interface{}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.message)

	if e.original != nil {
		b.WriteString(": ")
		b.WriteString(e.original.Error())
	}

	if len(e.fields) > 0 {
		keys := make([]string, 0, len(e.fields))
		for k := range e.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, e.fields[k])
		}
		b.WriteString("]")
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.original }

func (e *Error) Code() ErrorCode { return e.code }

// Fields returns a copy of the error's context fields.
func (e *Error) Fields() Fields {
	out := make(Fields, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// New creates an error with a code and message.
func New(code ErrorCode, message string) error {
	return &Error{code: code, message: message}
}

// Newf creates an error with a code and a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an existing error with a code and message. Returns nil for a
// nil error so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, message: message, original: err}
}

// WithFields attaches structured context to an error, merging with any fields
// already present.
func WithFields(err error, fields Fields) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		merged := make(Fields, len(e.fields)+len(fields))
		for k, v := range e.fields {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
		return &Error{code: e.code, message: e.message, original: e.original, fields: merged}
	}

	return &Error{code: Unknown, message: err.Error(), original: err, fields: fields}
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// As supports errors.As against **Error.
func (e *Error) As(target interface{}) bool {
	ptr, ok := target.(**Error)
	if !ok {
		return false
	}
	*ptr = e
	return true
}
