package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateSlice is returned when a slice name is already registered.
var ErrDuplicateSlice = errors.New("duplicate slice")

// ErrContainerSealed is returned when registration or hydration is attempted
// after the container has accepted its first dispatch.
var ErrContainerSealed = errors.New("container sealed")

// ErrInvalidSlice is returned when a slice definition is malformed
// (e.g. an empty name).
var ErrInvalidSlice = errors.New("invalid slice")

// ErrEmptyActionType is returned by Dispatch for an action with no type.
var ErrEmptyActionType = errors.New("empty action type")

// ErrNotFound is returned by Select when a key path does not resolve.
var ErrNotFound = errors.New("path not found")

// ErrSnapshotNotFound is returned by snapshot stores when a key is absent.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// TransitionError wraps a fault raised by a slice's reducer during dispatch.
// The dispatch it aborted left the tree unchanged.
type TransitionError struct {
	Slice      string
	ActionType string
	Err        error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %q failed in slice %q: %v", e.ActionType, e.Slice, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

func wrapNotFound(path string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, path)
}
