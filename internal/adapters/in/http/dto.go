package http

import (
	"time"

	"matching/internal/core/application/usecases/queries"
	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
)

// Error is the JSON error envelope returned on every failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateRequest is the payload for registering a delivery request.
type CreateRequest struct {
	CustomerID      string    `json:"customerId"`
	PickupAddress   string    `json:"pickupAddress"`
	DropoffAddress  string    `json:"dropoffAddress"`
	ItemDescription string    `json:"itemDescription"`
	ValidUntil      time.Time `json:"validUntil"`
}

// OfferTerms is the negotiable part of an offer or counter-offer payload.
type OfferTerms struct {
	PriceCents          int64  `json:"priceCents"`
	PickupEtaMinutes    int    `json:"pickupEtaMinutes"`
	DeliveryEtaMinutes  int    `json:"deliveryEtaMinutes"`
	Message             string `json:"message,omitempty"`
	Transport           string `json:"transport"`
	CanWaitForPayment   bool   `json:"canWaitForPayment"`
	AdvancePaymentCents *int64 `json:"advancePaymentCents,omitempty"`
}

// SubmitOffer is the payload for a courier's direct offer.
type SubmitOffer struct {
	CourierID  string     `json:"courierId"`
	Terms      OfferTerms `json:"terms"`
	ValidUntil time.Time  `json:"validUntil"`
}

// CounterOffer is the payload for countering an existing offer.
type CounterOffer struct {
	CourierID  string     `json:"courierId"`
	Terms      OfferTerms `json:"terms"`
	ValidUntil time.Time  `json:"validUntil"`
}

// WithReason carries the mandatory withdrawal reason and the optional
// rejection reason.
type WithReason struct {
	Reason string `json:"reason"`
}

// Created reports the identifier of a newly stored request or offer.
type Created struct {
	ID string `json:"id"`
}

// Offer is the read model for one offer in a request's negotiation history.
type Offer struct {
	ID                  string     `json:"id"`
	CourierID           string     `json:"courierId"`
	PriceCents          int64      `json:"priceCents"`
	PickupEtaMinutes    int        `json:"pickupEtaMinutes"`
	DeliveryEtaMinutes  int        `json:"deliveryEtaMinutes"`
	Message             string     `json:"message,omitempty"`
	Transport           string     `json:"transport"`
	CanWaitForPayment   bool       `json:"canWaitForPayment"`
	AdvancePaymentCents *int64     `json:"advancePaymentCents,omitempty"`
	IsCounterOffer      bool       `json:"isCounterOffer"`
	OriginalOfferID     *string    `json:"originalOfferId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	ValidUntil          time.Time  `json:"validUntil"`
	Status              string     `json:"status"`
	WithdrawReason      string     `json:"withdrawReason,omitempty"`
}

// CourierStats is the read model for a courier's accumulated metrics.
type CourierStats struct {
	CourierID         string `json:"courierId"`
	AcceptedCount     int64  `json:"acceptedCount"`
	TerminalCount     int64  `json:"terminalCount"`
	AverageResponseMs int64  `json:"averageResponseMs"`
}

func toOfferDTO(o queries.GetRequestOffersQueryResponse) Offer {
	dto := Offer{
		ID:                  o.ID.String(),
		CourierID:           o.CourierID.String(),
		PriceCents:          o.PriceCents,
		PickupEtaMinutes:    o.PickupEtaMinutes,
		DeliveryEtaMinutes:  o.DeliveryEtaMinutes,
		Message:             o.Message,
		Transport:           o.Transport,
		CanWaitForPayment:   o.CanWaitForPayment,
		AdvancePaymentCents: o.AdvancePaymentCents,
		IsCounterOffer:      o.IsCounterOffer,
		CreatedAt:           o.CreatedAt,
		ValidUntil:          o.ValidUntil,
		Status:              o.Status,
		WithdrawReason:      o.WithdrawReason,
	}

	if o.OriginalOfferID != nil {
		s := o.OriginalOfferID.String()
		dto.OriginalOfferID = &s
	}

	return dto
}

func (t OfferTerms) toDomain() (offer.Terms, error) {
	price, err := kernel.NewPrice(t.PriceCents)
	if err != nil {
		return offer.Terms{}, err
	}

	transport, err := offer.TransportFromString(t.Transport)
	if err != nil {
		return offer.Terms{}, err
	}

	var advance *kernel.Price
	if t.AdvancePaymentCents != nil {
		p, advErr := kernel.NewPrice(*t.AdvancePaymentCents)
		if advErr != nil {
			return offer.Terms{}, advErr
		}
		advance = &p
	}

	return offer.Terms{
		Price:              price,
		PickupEtaMinutes:   t.PickupEtaMinutes,
		DeliveryEtaMinutes: t.DeliveryEtaMinutes,
		Message:            t.Message,
		Transport:          transport,
		CanWaitForPayment:  t.CanWaitForPayment,
		AdvancePayment:     advance,
	}, nil
}
