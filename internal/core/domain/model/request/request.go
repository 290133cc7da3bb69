package request

import (
	"errors"
	"fmt"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// Request is the aggregate root for a customer's delivery ask. It carries the
// pickup and drop-off addresses, the item description, and a persisted
// validity deadline against which the expiry sweeper operates.
//
// Invariants:
//   - Must have valid request and customer identifiers
//   - Pickup and drop-off addresses must be non-empty
//   - The validity deadline must be after the creation time
//   - Status transitions follow the Open -> {Matched, Cancelled, Expired} machine
//   - At most one accepted offer may ever exist for a request; once it does,
//     the request is Matched and accepts no further offers
type Request struct {
	id              kernel.UUID
	customerID      kernel.UUID
	pickupAddress   string
	dropoffAddress  string
	itemDescription string
	createdAt       time.Time
	validUntil      time.Time
	status          Status

	isConstructed bool
}

// NewRequest creates an Open delivery request with validation. This is the
// only way (besides RestoreRequest for persistence) to obtain a valid Request.
func NewRequest(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	itemDescription string,
	createdAt time.Time,
	validUntil time.Time,
) (*Request, error) {
	r := &Request{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setAddresses(pickupAddress, dropoffAddress),
		r.setItemDescription(itemDescription),
		r.setWindow(createdAt, validUntil),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a request from persistence with an explicit
// status. Used exclusively by repository adapters.
func RestoreRequest(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	itemDescription string,
	createdAt time.Time,
	validUntil time.Time,
	status Status,
) (*Request, error) {
	r := &Request{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setAddresses(pickupAddress, dropoffAddress),
		r.setItemDescription(itemDescription),
		r.setWindow(createdAt, validUntil),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the identifier of the customer who created the request.
func (r *Request) CustomerID() kernel.UUID {
	return r.customerID
}

// PickupAddress returns the pickup location.
func (r *Request) PickupAddress() string {
	return r.pickupAddress
}

// DropoffAddress returns the drop-off location.
func (r *Request) DropoffAddress() string {
	return r.dropoffAddress
}

// ItemDescription returns the free-text description of the item to deliver.
func (r *Request) ItemDescription() string {
	return r.itemDescription
}

// CreatedAt returns the creation time.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// ValidUntil returns the persisted validity deadline.
func (r *Request) ValidUntil() time.Time {
	return r.validUntil
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// IsDeadlinePassed reports whether the validity deadline lies before now.
// This is advisory; the authoritative expiry transition belongs to the sweeper.
func (r *Request) IsDeadlinePassed(now time.Time) bool {
	return now.After(r.validUntil)
}

// Match marks the request as matched. Only Open requests can be matched.
func (r *Request) Match() error {
	newStatus, err := r.status.Match()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel marks the request as cancelled by the customer.
// Races against Match the same way: whichever conditional store update
// commits first wins; this in-memory transition only validates legality.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Expire marks the request as expired past its deadline.
func (r *Request) Expire() error {
	newStatus, err := r.status.Expire()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.customerID = id
	return nil
}

func (r *Request) setAddresses(pickup, dropoff string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if dropoff == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}
	r.pickupAddress = pickup
	r.dropoffAddress = dropoff
	return nil
}

func (r *Request) setItemDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("itemDescription")
	}
	r.itemDescription = description
	return nil
}

func (r *Request) setWindow(createdAt, validUntil time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if !validUntil.After(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("validUntil",
			fmt.Errorf("deadline %s is not after creation time %s", validUntil, createdAt))
	}
	r.createdAt = createdAt
	r.validUntil = validUntil
	return nil
}

func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
