package statsrepo

import (
	"context"
	"time"

	"matching/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatsRecorder implements StatsRecorder using GORM upserts against the
// main database connection. Stats are auxiliary bookkeeping: they run outside
// the negotiation transactions and a failed recording never affects offer or
// request state.
type GormStatsRecorder struct {
	db *gorm.DB
}

// NewGormStatsRecorder creates a new GORM stats recorder.
func NewGormStatsRecorder(db *gorm.DB) *GormStatsRecorder {
	return &GormStatsRecorder{db: db}
}

// RecordAccepted increments the courier's accepted counter and adds the
// response-time sample in one atomic upsert.
func (r *GormStatsRecorder) RecordAccepted(
	ctx context.Context,
	courierID kernel.UUID,
	responseTime time.Duration,
) error {
	return r.upsert(ctx, courierID, "accepted_count", responseTime)
}

// RecordTerminal increments the courier's non-accepted terminal counter and
// adds the response-time sample.
func (r *GormStatsRecorder) RecordTerminal(
	ctx context.Context,
	courierID kernel.UUID,
	responseTime time.Duration,
) error {
	return r.upsert(ctx, courierID, "terminal_count", responseTime)
}

func (r *GormStatsRecorder) upsert(
	ctx context.Context,
	courierID kernel.UUID,
	counterColumn string,
	responseTime time.Duration,
) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	ms := responseTime.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	dto := CourierStatsDTO{
		CourierID:       courierID.Bytes(),
		TotalResponseMs: ms,
	}
	switch counterColumn {
	case "accepted_count":
		dto.AcceptedCount = 1
	case "terminal_count":
		dto.TerminalCount = 1
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "courier_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			counterColumn: gorm.Expr(
				"courier_stats."+counterColumn+" + 1"),
			"total_response_ms": gorm.Expr(
				"courier_stats.total_response_ms + ?", ms),
		}),
	}).Create(&dto).Error
}
