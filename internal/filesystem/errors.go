package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrFailure is matched by every error returned from a FileSystem.
var ErrFailure = errors.New("filesystem failure")

// Error wraps the OS-reported cause of a failed FileSystem call.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports ErrFailure for every filesystem error so callers can match
// the kind without knowing the cause.
func (e *Error) Is(target error) bool {
	return target == ErrFailure
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return err
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &Error{Op: op, Path: path, Err: err}
}
