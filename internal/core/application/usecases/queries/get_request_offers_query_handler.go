package queries

import (
	"context"
	"database/sql"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestOffersQueryHandler reads a request's offers from the database
// with direct SQL for read performance.
type GetRequestOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestOffersQueryHandler creates a handler for offer listing queries.
func NewGetRequestOffersQueryHandler(db *gorm.DB) GetRequestOffersQueryHandler {
	return GetRequestOffersQueryHandler{db: db}
}

// Handle executes the query, returning the request's offers newest first.
// A request with no offers yields an empty slice, not an error.
func (h GetRequestOffersQueryHandler) Handle(
	ctx context.Context,
	query GetRequestOffersQuery,
) ([]GetRequestOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetRequestOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			price_cents,
			pickup_eta_minutes,
			delivery_eta_minutes,
			message,
			transport,
			can_wait_for_payment,
			advance_payment_cents,
			is_counter_offer,
			original_offer_id,
			created_at,
			valid_until,
			status,
			withdraw_reason
		FROM offers
		WHERE request_id = ?
		ORDER BY created_at DESC
	`, query.RequestID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRequestOffersQueryResponse
		var id, courierID uuid.UUID
		var originalOfferID uuid.NullUUID
		var advanceCents sql.NullInt64
		var transport, status int

		err = rows.Scan(
			&id,
			&courierID,
			&resp.PriceCents,
			&resp.PickupEtaMinutes,
			&resp.DeliveryEtaMinutes,
			&resp.Message,
			&transport,
			&resp.CanWaitForPayment,
			&advanceCents,
			&resp.IsCounterOffer,
			&originalOfferID,
			&resp.CreatedAt,
			&resp.ValidUntil,
			&status,
			&resp.WithdrawReason,
		)
		if err != nil {
			return nil, err
		}

		offerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = offerID

		courier, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CourierID = courier

		if originalOfferID.Valid {
			original, origErr := kernel.UUIDFromBytes(originalOfferID.UUID[:])
			if origErr != nil {
				return nil, origErr
			}
			resp.OriginalOfferID = &original
		}

		if advanceCents.Valid {
			cents := advanceCents.Int64
			resp.AdvancePaymentCents = &cents
		}

		resp.Transport = offer.Transport(transport).String()
		resp.Status = offer.Status(status).String()
		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
