package offerrepo

import (
	"context"
	"errors"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRequest retrieves every offer stored for a request, newest first.
func (r *GormOfferRepository) GetAllByRequest(
	ctx context.Context,
	requestID kernel.UUID,
) ([]*offer.Offer, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}

// AcceptIfPending transitions the offer to Accepted only while it is still
// Pending, stamping the acceptance time in the same statement.
func (r *GormOfferRepository) AcceptIfPending(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (bool, error) {
	return r.transitionIfPending(ctx, id, map[string]any{
		"status":      int(offer.Accepted),
		"accepted_at": at,
	})
}

// RejectIfPending transitions the offer to Rejected only while it is still
// Pending, stamping the rejection time in the same statement.
func (r *GormOfferRepository) RejectIfPending(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (bool, error) {
	return r.transitionIfPending(ctx, id, map[string]any{
		"status":      int(offer.Rejected),
		"rejected_at": at,
	})
}

// WithdrawIfPending transitions the offer to Withdrawn only while it is still
// Pending, persisting the courier's reason.
func (r *GormOfferRepository) WithdrawIfPending(
	ctx context.Context,
	id kernel.UUID,
	reason string,
	at time.Time,
) (bool, error) {
	return r.transitionIfPending(ctx, id, map[string]any{
		"status":          int(offer.Withdrawn),
		"withdraw_reason": reason,
		"withdrawn_at":    at,
	})
}

// ExpireIfPending transitions the offer to Expired only while it is still
// Pending. A sweep that races a winning acceptance loses here.
func (r *GormOfferRepository) ExpireIfPending(ctx context.Context, id kernel.UUID) (bool, error) {
	return r.transitionIfPending(ctx, id, map[string]any{
		"status": int(offer.Expired),
	})
}

// RejectAllPendingByRequest force-rejects every pending offer on the request
// except the winner in a single statement, returning the affected ids.
func (r *GormOfferRepository) RejectAllPendingByRequest(
	ctx context.Context,
	requestID, exceptOfferID kernel.UUID,
	at time.Time,
) ([]kernel.UUID, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		UPDATE offers
		SET status = ?, rejected_at = ?
		WHERE request_id = ? AND status = ? AND id <> ?
		RETURNING id
	`, int(offer.Rejected), at, requestID.Bytes(), int(offer.Pending), exceptOfferID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rejected := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		rejected = append(rejected, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rejected, nil
}

// GetAllExpiredPending retrieves pending offers whose deadline lies before now.
func (r *GormOfferRepository) GetAllExpiredPending(
	ctx context.Context,
	now time.Time,
) ([]*offer.Offer, error) {
	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND valid_until < ?", int(offer.Pending), now).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}

func (r *GormOfferRepository) transitionIfPending(
	ctx context.Context,
	id kernel.UUID,
	updates map[string]any,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(offer.Pending)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
