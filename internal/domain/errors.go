package domain

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id format")
	ErrForbidden = errors.New("access forbidden: you don't own this resource")
)

// MissingFieldError reports a required draft field that was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IndexOutOfRangeError indicates a caller bug: the UI allowed an entry
// index outside the draft's list. Handlers treat it as an internal
// error, not user input.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("entry index %d out of range (count %d)", e.Index, e.Count)
}
