package interfaces

import (
	"context"
	"errors"
	"fmt"
)

// ErrConflict is returned by the record store when a uniqueness constraint
// is violated (duplicate order number).
var ErrConflict = errors.New("record store conflict")

// TransientError wraps connectivity and timeout failures from the record
// store. It is the only error class the commit boundary is allowed to turn
// into a queued scan; everything else propagates.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("record store unreachable: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is eligible for offline queuing. A commit
// that ran out its deadline counts as transient even when the store did not
// get a chance to classify it.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
