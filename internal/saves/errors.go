package saves

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

// Error kinds. Match them with errors.Is; the concrete types below carry
// the details.
var (
	// ErrInvalidInput is returned when a caller supplied value fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when the item's state forbids the operation.
	ErrInvalidState = errors.New("invalid state")

	// ErrMismatch is returned when the tree and the filesystem disagree.
	// Reload the affected subtree to recover.
	ErrMismatch = errors.New("filesystem mismatch")

	// ErrFilesystem matches failures reported by the filesystem itself.
	ErrFilesystem = filesystem.ErrFailure
)

// InputError describes a rejected caller supplied value.
type InputError struct {
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Value, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StateError describes an operation the item's state does not allow.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Op, e.Reason)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// MismatchError carries the path where the tree and the filesystem disagree.
type MismatchError struct {
	Path   string
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatch at %s: %s", e.Path, e.Reason)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

func invalidInput(value, reason string) error {
	return &InputError{Value: value, Reason: reason}
}

func invalidState(op, reason string) error {
	return &StateError{Op: op, Reason: reason}
}

func missing(path string) error {
	return &MismatchError{Path: path, Reason: "no longer exists on disk"}
}

func occupied(path string) error {
	return &MismatchError{Path: path, Reason: "already exists on disk"}
}
