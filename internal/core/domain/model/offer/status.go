package offer

import (
	"fmt"

	"matching/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery offer.
// Pending is the only non-terminal state:
//
//	Pending ──┬──> Accepted
//	          ├──> Rejected
//	          ├──> Expired
//	          └──> Withdrawn
//
// Offer status is monotonic: once terminal, it never transitions again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a validated, stored offer.
	Pending

	// Accepted indicates the customer chose this offer. At most one offer
	// per request ever reaches this state.
	Accepted

	// Rejected indicates the offer lost to a sibling or was declined.
	Rejected

	// Expired indicates the offer's validity deadline passed unanswered.
	Expired

	// Withdrawn indicates the courier pulled the offer back.
	Withdrawn
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Expired:   "Expired",
		Withdrawn: "Withdrawn",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Expired:   "Expired",
		Withdrawn: "Withdrawn",
	}
}

// Validate checks if the Status value is one of the defined offer states.
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
	return s == Accepted || s == Rejected || s == Expired || s == Withdrawn
}

func (s Status) transitionTo(target Status, verb string) (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s.String(), verb),
		)
	}
	return target, nil
}

// Accept transitions the status to Accepted. Only Pending offers qualify.
func (s Status) Accept() (Status, error) {
	return s.transitionTo(Accepted, "accept")
}

// Reject transitions the status to Rejected. Only Pending offers qualify.
func (s Status) Reject() (Status, error) {
	return s.transitionTo(Rejected, "reject")
}

// Expire transitions the status to Expired. Only Pending offers qualify,
// so a sweep racing an acceptance can never expire the winner.
func (s Status) Expire() (Status, error) {
	return s.transitionTo(Expired, "expire")
}

// Withdraw transitions the status to Withdrawn. Only Pending offers qualify.
func (s Status) Withdraw() (Status, error) {
	return s.transitionTo(Withdrawn, "withdraw")
}
