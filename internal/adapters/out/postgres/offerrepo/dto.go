// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence. Every lifecycle transition is implemented as a
// conditional update guarded on the row still being pending, which is what
// makes concurrent acceptance, withdrawal and expiry safe without locks.
package offerrepo

import (
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer aggregates.
// Prices are stored in cents. The validity deadline and status are indexed
// for the expiry sweeper; request_id is indexed for per-request listings.
type OfferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;index"`
	CourierID uuid.UUID `gorm:"type:uuid;index"`

	PriceCents          int64
	PickupEtaMinutes    int
	DeliveryEtaMinutes  int
	Message             string
	Transport           int
	CanWaitForPayment   bool
	AdvancePaymentCents *int64

	IsCounterOffer  bool
	OriginalOfferID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt  time.Time
	ValidUntil time.Time `gorm:"index"`
	Status     int       `gorm:"index"`

	WithdrawReason string
	AcceptedAt     *time.Time
	RejectedAt     *time.Time
	WithdrawnAt    *time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts an offer domain aggregate to its database representation.
func fromDomain(o *offer.Offer) OfferDTO {
	var advanceCents *int64
	if advance := o.AdvancePayment(); advance != nil {
		cents := advance.Cents()
		advanceCents = &cents
	}

	var originalID *uuid.UUID
	if id := o.OriginalOfferID(); id != nil {
		raw := id.Bytes()
		originalID = &raw
	}

	return OfferDTO{
		ID:                  o.ID().Bytes(),
		RequestID:           o.RequestID().Bytes(),
		CourierID:           o.CourierID().Bytes(),
		PriceCents:          o.Price().Cents(),
		PickupEtaMinutes:    o.PickupEtaMinutes(),
		DeliveryEtaMinutes:  o.DeliveryEtaMinutes(),
		Message:             o.Message(),
		Transport:           int(o.TransportMethod()),
		CanWaitForPayment:   o.CanWaitForPayment(),
		AdvancePaymentCents: advanceCents,
		IsCounterOffer:      o.IsCounterOffer(),
		OriginalOfferID:     originalID,
		CreatedAt:           o.CreatedAt(),
		ValidUntil:          o.ValidUntil(),
		Status:              int(o.Status()),
		WithdrawReason:      o.WithdrawReason(),
		AcceptedAt:          o.AcceptedAt(),
		RejectedAt:          o.RejectedAt(),
		WithdrawnAt:         o.WithdrawnAt(),
	}
}

// toDomain converts a database DTO to an offer domain aggregate using
// RestoreOffer so the persisted status and timestamps are preserved.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	var advance *kernel.Price
	if dto.AdvancePaymentCents != nil {
		p, advErr := kernel.NewPrice(*dto.AdvancePaymentCents)
		if advErr != nil {
			return nil, advErr
		}
		advance = &p
	}

	var originalID *kernel.UUID
	if dto.OriginalOfferID != nil {
		oID, origErr := kernel.UUIDFromBytes((*dto.OriginalOfferID)[:])
		if origErr != nil {
			return nil, origErr
		}
		originalID = &oID
	}

	terms := offer.Terms{
		Price:              price,
		PickupEtaMinutes:   dto.PickupEtaMinutes,
		DeliveryEtaMinutes: dto.DeliveryEtaMinutes,
		Message:            dto.Message,
		Transport:          offer.Transport(dto.Transport),
		CanWaitForPayment:  dto.CanWaitForPayment,
		AdvancePayment:     advance,
	}

	return offer.RestoreOffer(
		id,
		requestID,
		courierID,
		terms,
		dto.CreatedAt,
		dto.ValidUntil,
		offer.Status(dto.Status),
		originalID,
		dto.WithdrawReason,
		dto.AcceptedAt,
		dto.RejectedAt,
		dto.WithdrawnAt,
	)
}
