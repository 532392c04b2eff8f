package shred

import "errors"

// Common errors that can be returned while shredding
var (
	// ErrTargetMissing is returned when a path expected to name a regular
	// file does not exist
	ErrTargetMissing = errors.New("file does not exist")

	// ErrNoParent is returned when a trashinfo path is too shallow to
	// derive the trash root from
	ErrNoParent = errors.New("parent does not exist")

	// ErrNoName is returned when a trashinfo path has no file name to
	// derive the stored name from
	ErrNoName = errors.New("file has no name")
)

// Error wraps an error with additional context about the shred operation
type Error struct {
	// Op is the operation that failed (e.g., "open", "overwrite", "remove")
	Op string

	// Path is the path of the target that caused the error
	Path string

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(op, path string, err error) error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsTargetMissing returns true if the error is ErrTargetMissing
func IsTargetMissing(err error) bool {
	return errors.Is(err, ErrTargetMissing)
}

// IsMalformedHandle returns true if the error reports a trashinfo path
// that violates the trash directory layout
func IsMalformedHandle(err error) bool {
	return errors.Is(err, ErrNoParent) || errors.Is(err, ErrNoName)
}
