// Package apperr defines the three error kinds the API distinguishes:
// input that failed validation, I/O that may succeed on retry, and data
// that is internally inconsistent.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries one message per offending field.
// It never crashes a flow: the caller shows the messages and keeps the input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidation returns nil when fields is empty.
func NewValidation(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// TransientIOError wraps a storage or network failure worth retrying.
type TransientIOError struct {
	Op  string
	Err error
}

func (e *TransientIOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientIOError) Unwrap() error { return e.Err }

// Transient wraps err as a TransientIOError. A nil err stays nil.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientIOError{Op: op, Err: err}
}

// FatalStateError reports data that cannot be served as-is.
type FatalStateError struct {
	Reason string
}

func (e *FatalStateError) Error() string {
	return "inconsistent state: " + e.Reason
}

// Fatalf builds a FatalStateError with a formatted reason.
func Fatalf(format string, args ...any) error {
	return &FatalStateError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransient reports whether err is (or wraps) a TransientIOError.
func IsTransient(err error) bool {
	var te *TransientIOError
	return errors.As(err, &te)
}

// IsFatal reports whether err is (or wraps) a FatalStateError.
func IsFatal(err error) bool {
	var fe *FatalStateError
	return errors.As(err, &fe)
}
