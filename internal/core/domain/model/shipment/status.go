package shipment

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Created ──(accept, same creation flow)──> InProgress
//	InProgress ──(resolution: deadline missed)──> Failed      [terminal]
//	InProgress ──(resolution: deadline met)────> Completed    [terminal]
//	any ──(manual override)──> Completed | Failed             [terminal]
//
// Terminal states accept idempotent re-application: the queue delivers
// messages at least once, so resolving an already-terminal shipment rewrites
// the status instead of failing.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status written when the shipment record is
	// first persisted. It is advanced to InProgress within the same
	// creation flow and is never observed by callers.
	Created

	// InProgress indicates the shipment has been accepted for shipping and
	// is awaiting resolution by the batch worker or a manual override.
	InProgress

	// Completed indicates the shipment was resolved before its deadline or
	// manually completed. Terminal.
	Completed

	// Failed indicates the shipment missed its deadline or was manually
	// failed. Terminal.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		InProgress: "InProgress",
		Completed:  "Completed",
		Failed:     "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		InProgress: "InProgress",
		Completed:  "Completed",
		Failed:     "Failed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, InProgress, Completed and Failed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is Completed or Failed.
// No further transitions are defined from a terminal status, though
// re-applying a terminal write is allowed (idempotent overwrite).
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Accept transitions the status to InProgress.
//
// Valid transitions:
//   - Created -> InProgress (shipment accepted for shipping)
//
// Returns (0, error) if the shipment is not in Created status.
func (s Status) Accept() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return InProgress, nil
}

// ResolveByDeadline resolves a shipment against its due date: Failed when
// the deadline already passed at the evaluation time, Completed otherwise.
//
// The resolution is an unguarded overwrite. A duplicate queue message
// re-evaluates the deadline, so a shipment resolved Completed can be
// rewritten to Failed once its due date has passed. This mirrors the
// at-least-once delivery model; manual overrides remain available to
// operators in either case.
func ResolveByDeadline(dueAt, now time.Time) Status {
	if dueAt.Before(now) {
		return Failed
	}
	return Completed
}
