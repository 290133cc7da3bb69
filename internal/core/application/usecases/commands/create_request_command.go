package commands

import (
	"errors"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/errs"
	"matching/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand registers a customer's delivery ask so couriers can
// start submitting offers against it. The validity deadline is persisted
// data: expiry survives restarts because the sweeper reads it back from the
// store, not from an in-process timer.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	customerID      kernel.UUID
	pickupAddress   string
	dropoffAddress  string
	itemDescription string
	validUntil      time.Time

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to register a delivery request.
// Validates identifiers, addresses, the item description and the deadline.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	itemDescription string,
	validUntil time.Time,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCustomerID(customerID),
		cmd.setAddresses(pickupAddress, dropoffAddress),
		cmd.setItemDescription(itemDescription),
		cmd.setValidUntil(validUntil),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the new request's identifier.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CustomerID returns the requesting customer's identifier.
func (c CreateRequestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the pickup location.
func (c CreateRequestCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the drop-off location.
func (c CreateRequestCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// ItemDescription returns the free-text item description.
func (c CreateRequestCommand) ItemDescription() string {
	return c.itemDescription
}

// ValidUntil returns the request's validity deadline.
func (c CreateRequestCommand) ValidUntil() time.Time {
	return c.validUntil
}

func (c *CreateRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requestID = id
	return nil
}

func (c *CreateRequestCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateRequestCommand) setAddresses(pickup, dropoff string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if dropoff == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}
	c.pickupAddress = pickup
	c.dropoffAddress = dropoff
	return nil
}

func (c *CreateRequestCommand) setItemDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("itemDescription")
	}
	c.itemDescription = description
	return nil
}

func (c *CreateRequestCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}
	c.validUntil = validUntil
	return nil
}
