package commands

import (
	"errors"
	"fmt"

	"matching/internal/pkg/errs"
)

// ErrConflict is the root of the lost-race error taxonomy. A conflict means
// another operation's conditional update committed first; the caller should
// refresh state and stop, not retry blindly.
var ErrConflict = errors.New("state conflict")

var (
	// ErrAlreadyMatched reports that the request was matched by a competing
	// acceptance (or cancellation lost to a match).
	ErrAlreadyMatched = fmt.Errorf("%w: request is already matched", ErrConflict)

	// ErrAlreadyTerminal reports that the target offer or request had already
	// reached a terminal status.
	ErrAlreadyTerminal = fmt.Errorf("%w: already in a terminal status", ErrConflict)

	// ErrAlreadyCancelled reports that the request was cancelled.
	ErrAlreadyCancelled = fmt.Errorf("%w: request is already cancelled", ErrConflict)
)

// ErrStoreUnavailable classifies transient infrastructure failures. The whole
// operation is safe to retry: every transition is a conditional update, so a
// retry that lands after a hidden success finds the precondition gone and
// reports a conflict instead of double-applying.
var ErrStoreUnavailable = errors.New("store unavailable")

// wrapStore classifies a repository error. Not-found and validation errors
// pass through untouched; anything else is presumed transient infrastructure
// trouble and tagged retryable.
func wrapStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return errors.Join(ErrStoreUnavailable, err)
}
