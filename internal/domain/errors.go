package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against a *CandidateError.
var (
	// ErrNotFound matches errors of kind KindNotFound.
	ErrNotFound = errors.New("not found")
	// ErrUnknown matches errors of kind KindUnknown.
	ErrUnknown = errors.New("unknown error")
)

// ErrorKind classifies a CandidateError.
type ErrorKind int

const (
	// KindUnknown is any storage failure other than a missing row.
	KindUnknown ErrorKind = iota
	// KindNotFound means a single-row lookup found nothing.
	KindNotFound
)

// String returns the kind name used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	default:
		return "UnknownError"
	}
}

// CandidateError is returned by candidate storage. Message carries the
// underlying failure text and must not be shown to untrusted clients.
type CandidateError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewNotFoundError returns a CandidateError of kind KindNotFound wrapping err.
func NewNotFoundError(err error) *CandidateError {
	return &CandidateError{Kind: KindNotFound, Message: err.Error(), Err: err}
}

// NewUnknownError returns a CandidateError of kind KindUnknown wrapping err.
func NewUnknownError(err error) *CandidateError {
	return &CandidateError{Kind: KindUnknown, Message: err.Error(), Err: err}
}

// Error returns "candidate <kind>: <message>".
func (e *CandidateError) Error() string {
	return fmt.Sprintf("candidate %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *CandidateError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel matching e's kind, so callers
// can use errors.Is(err, ErrNotFound) or errors.Is(err, ErrUnknown).
func (e *CandidateError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrUnknown:
		return e.Kind == KindUnknown
	}
	return false
}
