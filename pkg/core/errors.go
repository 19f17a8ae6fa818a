package core

import "errors"

// Common errors.
// Operations wrap these with context using fmt.Errorf("%w: ...") so callers
// can classify failures with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("record already exists")
	ErrNotFound   = errors.New("record not found")
	ErrParse      = errors.New("collection is corrupt")
	ErrIO         = errors.New("collection storage failed")
	ErrReadOnly   = errors.New("store is in read-only mode")
)

// Kind is the stable, machine readable class of an error.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindParse      Kind = "parse"
	KindIO         Kind = "io"
	KindInternal   Kind = "internal"
)

// KindOf classifies err against the sentinel errors of this package.
// Anything unrecognised is KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrIO), errors.Is(err, ErrReadOnly):
		return KindIO
	default:
		return KindInternal
	}
}
