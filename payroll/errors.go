/*
errors.go - Error types for the roster and employee model

ERROR CATEGORIES:
  1. Roster errors - Invalid positions passed to Remove
  2. Model errors - Unknown employee kinds from external input

USAGE:
  if errors.Is(err, payroll.ErrIndexOutOfRange) {
      // nothing was removed
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIndexOutOfRange is returned when a roster position does not exist.
	ErrIndexOutOfRange = errors.New("roster index out of range")

	// ErrUnknownKind is returned when an employee kind is not one of Kinds.
	ErrUnknownKind = errors.New("unknown employee kind")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// IndexOutOfRangeError reports the rejected index and the roster length
// at the time of the call.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("roster index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown employee kind %q", e.Kind)
}

func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownKind
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownKind)
}

// IsNotFound returns true if the error refers to a missing roster slot.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}
