package engine

import (
	"errors"
	"fmt"
)

// ErrorKind is the distinguishable failure class reported to callers.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid-input"
	KindUnknownCategory ErrorKind = "unknown-category"
)

var (
	// ErrInvalidCategoryValue marks a value that cannot be read as a number.
	ErrInvalidCategoryValue = errors.New("invalid category value")
	// ErrUnknownCategory marks a category missing from a record or the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidCategory marks a malformed category list (empty or repeated key).
	ErrInvalidCategory = errors.New("invalid category")
)

// Error is a scoring or normalization failure. Runs that return an Error
// produce no partial output.
type Error struct {
	Kind     ErrorKind
	Category string // category key or source column
	Record   int    // row index in the view, -1 when not tied to a row
	Name     string // record identity when known
	cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	where := ""
	if e.Record >= 0 {
		where = fmt.Sprintf(" (record %d", e.Record)
		if e.Name != "" {
			where += fmt.Sprintf(" %q", e.Name)
		}
		where += ")"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: category %q%s: %v", e.Kind, e.Category, where, e.cause)
	}
	return fmt.Sprintf("%s: category %q%s", e.Kind, e.Category, where)
}

// Unwrap exposes the sentinel (and any parse error) to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewInvalidValueError reports a value in column/category that is not numeric.
// cause may be nil or the underlying parse error.
func NewInvalidValueError(category string, record int, name string, cause error) *Error {
	wrapped := ErrInvalidCategoryValue
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrInvalidCategoryValue, cause)
	}
	return &Error{
		Kind:     KindInvalidInput,
		Category: category,
		Record:   record,
		Name:     name,
		cause:    wrapped,
	}
}

func newUnknownCategoryError(category string, record int, name string) *Error {
	return &Error{
		Kind:     KindUnknownCategory,
		Category: category,
		Record:   record,
		Name:     name,
		cause:    ErrUnknownCategory,
	}
}

func newInvalidCategoryError(category string, reason string) *Error {
	return &Error{
		Kind:     KindInvalidInput,
		Category: category,
		Record:   -1,
		cause:    fmt.Errorf("%w: %s", ErrInvalidCategory, reason),
	}
}

// KindOf extracts the ErrorKind of err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
