package verifier

import (
	"errors"
	"fmt"
)

// PruneReason describes why a path stopped without failing.
type PruneReason string

const (
	PruneAssumption PruneReason = "assumption" // An assumption did not hold.
	PruneRejected   PruneReason = "rejected"   // The path was explicitly rejected.
	PruneFault      PruneReason = "fault"      // A panic occurred while generating values.
	PruneExhausted  PruneReason = "exhausted"  // The engine ran out of inputs or depth.
)

// PrunedError ends a path as a vacuous success. It is never a verification failure.
type PrunedError struct {
	Reason PruneReason
	Detail string
}

func (e *PrunedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("path pruned (%s): %s", e.Reason, e.Detail)
	}
	return fmt.Sprintf("path pruned (%s)", e.Reason)
}

// Failure ends a path as a verification failure.
type Failure struct {
	Message string
}

func (e *Failure) Error() string {
	return fmt.Sprintf("verification failed: %s", e.Message)
}

// IsPruned reports whether err ends a path without failure.
func IsPruned(err error) bool {
	var pruned *PrunedError
	return errors.As(err, &pruned)
}

// IsFailure reports whether err is a verification failure.
func IsFailure(err error) bool {
	var failure *Failure
	return errors.As(err, &failure)
}

// FailureMessage returns the message of a verification failure, if err is one.
func FailureMessage(err error) (string, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Message, true
	}
	return "", false
}
