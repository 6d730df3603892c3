package godbf

import "errors"

// Errors returned by this package are wrapped in a *FieldError and can be
// checked with errors.Is against the values below. Errors from the underlying
// io.Reader or io.Writer are returned unwrapped.
var (
	// ErrInvalidArgument is returned when a Set method is given a value the
	// descriptor cannot hold.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation is returned when changing a property fixed by
	// the field type, such as the length of a Date field.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrRecordSize is returned by DecodeField when the chunk is not a full
	// descriptor record.
	ErrRecordSize = errors.New("bad record size")

	// ErrCorruptField is returned by a strict Codec when a descriptor breaks
	// the field invariants.
	ErrCorruptField = errors.New("corrupt field descriptor")
)

// FieldError records the operation that failed and why.
type FieldError struct {
	Op      string
	Err     error
	Message string
}

func newFieldError(op string, err error, message string) error {
	return &FieldError{Op: op, Err: err, Message: message}
}

// Error implements error
func (e *FieldError) Error() string {
	str := "godbf: "
	if e.Op != "" {
		str += e.Op + ": "
	}
	str += e.Err.Error()
	if e.Message != "" {
		str += " (" + e.Message + ")"
	}
	return str
}

// Unwrap implements errors's Unwrap()
func (e *FieldError) Unwrap() error {
	return e.Err
}
