package requestrepo

import (
	"context"
	"errors"
	"time"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/core/domain/model/offer"
	"matching/internal/core/domain/model/request"
	"matching/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
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

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusIf performs the conditional status transition: the row is
// updated only while it still holds the expected current status. The
// RowsAffected count is the race verdict.
func (r *GormRequestRepository) UpdateStatusIf(
	ctx context.Context,
	id kernel.UUID,
	from, to request.Status,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// GetExpiredOpenWithoutPendingOffers retrieves open requests past their
// deadline that have no pending offers left to resolve.
func (r *GormRequestRepository) GetExpiredOpenWithoutPendingOffers(
	ctx context.Context,
	now time.Time,
) ([]*request.Request, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Where(`status = ? AND valid_until < ?
			AND NOT EXISTS (
				SELECT 1 FROM offers
				WHERE offers.request_id = requests.id AND offers.status = ?
			)`, int(request.Open), now, int(offer.Pending)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
