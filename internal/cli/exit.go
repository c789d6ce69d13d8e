package cli

import (
	"errors"

	"github.com/brettbedarf/fsnode"
)

// Process exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1 // unclassified errors and a cancelled browse
	ExitUsageError   = 2 // reserved for argument errors reported by cobra
	ExitPanic        = 3
	ExitNotFound     = 10 // NotFound and ParentMissing
	ExitPermission   = 11
	ExitConflict     = 12 // AlreadyExists and NotADirectory
	ExitOpenFailure  = 13
)

var errCancelled = errors.New("cancelled")

// ExitCodeForError maps a command error onto a process exit code
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, errCancelled):
		return ExitGeneralError
	case errors.Is(err, fsnode.ErrNotFound), errors.Is(err, fsnode.ErrParentMissing):
		return ExitNotFound
	case errors.Is(err, fsnode.ErrPermissionDenied):
		return ExitPermission
	case errors.Is(err, fsnode.ErrAlreadyExists), errors.Is(err, fsnode.ErrNotADirectory):
		return ExitConflict
	case errors.Is(err, fsnode.ErrOpenFailure):
		return ExitOpenFailure
	}
	return ExitGeneralError
}
