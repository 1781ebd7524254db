package renamer

import (
	"errors"
	"fmt"
)

// ErrDirectoryNotFound is returned when the target directory is missing or is
// not a directory. It aborts a run before any entry is processed.
var ErrDirectoryNotFound = errors.New("directory not found")

// DirectoryError reports a failed target directory check.
type DirectoryError struct {
	Dir string
	Err error // underlying stat error, nil when the path is not a directory
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDirectoryNotFound, e.Dir)
}

// Unwrap exposes both ErrDirectoryNotFound and the stat error.
func (e *DirectoryError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDirectoryNotFound}
	}
	return []error{ErrDirectoryNotFound, e.Err}
}

// RenameError is a failed rename of a primary or metadata file.
type RenameError struct {
	Old string
	New string
	Err error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.Old, e.New, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }
