package terminal

import (
	"errors"
)

// ErrClosed is returned by drivers used after they were finalized
var ErrClosed = errors.New("terminal: driver closed")

// RestoreError reports a failure to put the ambient state back after a scoped write
// Err is the failure of the write itself, nil when only the restore failed
type RestoreError struct {
	Err     error
	Restore error
}

func (e *RestoreError) Error() string {
	if e.Err == nil {
		return "terminal: restore state: " + e.Restore.Error()
	}
	return e.Err.Error() + " (restore state: " + e.Restore.Error() + ")"
}

// Unwrap exposes both failures to errors.Is and errors.As
func (e *RestoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Restore}
	}
	return []error{e.Err, e.Restore}
}
