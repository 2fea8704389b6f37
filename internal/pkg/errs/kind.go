package errs

import "errors"

// Kind is the coarse classification callers use to decide how to report
// an error (for example which HTTP status to answer with).
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	case KindConflict:
		return "Conflict"
	case KindInternal:
		return "Internal"
	default:
		return "Internal"
	}
}

// KindOf classifies err by the sentinel it wraps. Unrecognised errors,
// such as raw store failures, are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindBadRequest
	default:
		return KindInternal
	}
}
