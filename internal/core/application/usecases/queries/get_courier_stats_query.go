package queries

import (
	"errors"

	"matching/internal/core/domain/model/kernel"
	"matching/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery retrieves a courier's accumulated negotiation metrics.
type GetCourierStatsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierStatsQuery creates a query for one courier's stats.
func NewGetCourierStatsQuery(courierID kernel.UUID) (GetCourierStatsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierStatsQuery{}, err
	}

	return GetCourierStatsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

// CourierID returns the target courier's identifier.
func (q GetCourierStatsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierStatsQueryResponse is the read model for a courier's accumulated
// metrics. A courier with no recorded history returns all-zero counters.
type GetCourierStatsQueryResponse struct {
	CourierID         kernel.UUID
	AcceptedCount     int64
	TerminalCount     int64
	AverageResponseMs int64
}
