// Package requestrepo provides data transfer objects and mapping functions for
// delivery request persistence. It implements the repository pattern for the
// request aggregate, handling conversion between domain entities and database
// rows, with every status write expressed as a conditional update.
package requestrepo

import (
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates. The validity deadline and status are indexed because the expiry
// sweeper selects on both.
type RequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress   string
	DropoffAddress  string
	ItemDescription string
	CreatedAt       time.Time
	ValidUntil      time.Time `gorm:"index"`
	Status          int       `gorm:"index"`
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request domain aggregate to its database representation.
func fromDomain(r *request.Request) RequestDTO {
	return RequestDTO{
		ID:              r.ID().Bytes(),
		CustomerID:      r.CustomerID().Bytes(),
		PickupAddress:   r.PickupAddress(),
		DropoffAddress:  r.DropoffAddress(),
		ItemDescription: r.ItemDescription(),
		CreatedAt:       r.CreatedAt(),
		ValidUntil:      r.ValidUntil(),
		Status:          int(r.Status()),
	}
}

// toDomain converts a database DTO to a request domain aggregate using
// RestoreRequest so the persisted status is preserved.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		id,
		customerID,
		dto.PickupAddress,
		dto.DropoffAddress,
		dto.ItemDescription,
		dto.CreatedAt,
		dto.ValidUntil,
		request.Status(dto.Status),
	)
}
