package request

import (
	"fmt"

	"matching/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery request.
// It implements a state machine in which Open is the only non-terminal state:
//
//	Open ──┬──> Matched
//	       ├──> Cancelled
//	       └──> Expired
//
// Matched, Cancelled and Expired are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status. Only open requests accept offers.
	Open

	// Matched indicates exactly one offer was accepted for the request.
	Matched

	// Cancelled indicates the customer withdrew the request before a match.
	Cancelled

	// Expired indicates the validity deadline passed before a match.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Matched:   "Matched",
		Cancelled: "Cancelled",
		Expired:   "Expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Matched:   "Matched",
		Cancelled: "Cancelled",
		Expired:   "Expired",
	}
}

// Validate checks if the Status value is one of the defined request states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == Matched || s == Cancelled || s == Expired
}

// Match transitions the status to Matched.
// Only Open requests can be matched; terminal states reject the transition.
func (s Status) Match() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to match", s.String()),
		)
	}

	return Matched, nil
}

// Cancel transitions the status to Cancelled.
// Only Open requests can be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// Expire transitions the status to Expired.
// Only Open requests can expire; a matched request never becomes expired.
func (s Status) Expire() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}

	return Expired, nil
}
