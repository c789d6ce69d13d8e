package fsnode

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// Kind categorizes a node operation failure
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindNotADirectory    Kind = "not_a_directory"
	KindPermissionDenied Kind = "permission_denied"
	KindAlreadyExists    Kind = "already_exists"
	KindParentMissing    Kind = "parent_missing"
	KindOpenFailure      Kind = "open_failure"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrNotADirectory    = &Error{Kind: KindNotADirectory}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists}
	ErrParentMissing    = &Error{Kind: KindParentMissing}
	ErrOpenFailure      = &Error{Kind: KindOpenFailure}
)

// Error is returned by every failing node operation.
//
// An open failure usually wraps the underlying reason, so both
// errors.Is(err, ErrOpenFailure) and errors.Is(err, ErrParentMissing) hold
// for a write stream whose parent directory is gone.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteByte(' ')
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so the package sentinels work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds an *Error of the given kind.
func NewError(op, path string, kind Kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// KindOf classifies a native error. The second result is false when err does
// not map onto a node error kind.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound, true
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied, true
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists, true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOTDIR:
			return KindNotADirectory, true
		case syscall.EROFS:
			return KindPermissionDenied, true
		}
	}
	return "", false
}
