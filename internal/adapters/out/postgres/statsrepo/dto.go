// Package statsrepo persists accumulated per-courier negotiation metrics.
// Counters live in a single row per courier and are maintained with atomic
// upserts, so concurrent recordings never lose increments.
package statsrepo

import (
	"github.com/google/uuid"
)

// CourierStatsDTO represents the accumulated counters for one courier.
// Response times are summed in milliseconds; readers derive the average.
type CourierStatsDTO struct {
	CourierID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AcceptedCount   int64
	TerminalCount   int64
	TotalResponseMs int64
}

// TableName specifies the database table name for courier stats.
func (CourierStatsDTO) TableName() string {
	return "courier_stats"
}
