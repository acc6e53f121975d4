package book

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrValidation is returned when a book violates a field rule.
	ErrValidation = errors.New("book is invalid")

	// ErrDuplicateID is returned when the store already holds the id being inserted.
	ErrDuplicateID = errors.New("book id already exists")
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Reason tells validation failures apart.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNameRequired
	ReasonReadPageExceedsPageCount
)

func (r Reason) String() string {
	switch r {
	case ReasonNameRequired:
		return "name is required"
	case ReasonReadPageExceedsPageCount:
		return "readPage must not exceed pageCount"
	default:
		return "none"
	}
}

// Error is the error type returned by the service.
type Error struct {
	Op     string
	Kind   Kind
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Reason != ReasonNone:
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel matching the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

func notFound(op string) error {
	return &Error{Op: op, Kind: KindNotFound, Err: ErrNotFound}
}

func invalid(op string, reason Reason) error {
	return &Error{Op: op, Kind: KindValidation, Reason: reason}
}

// KindOf returns the kind carried by err. Errors not produced by this
// package count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}
	return KindInternal
}

// ReasonOf returns the validation reason carried by err, if any.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ReasonNone
}
