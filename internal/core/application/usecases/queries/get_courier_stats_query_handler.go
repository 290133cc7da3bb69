package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetCourierStatsQueryHandler reads a courier's accumulated counters from the
// database.
type GetCourierStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierStatsQueryHandler creates a handler for courier stats queries.
func NewGetCourierStatsQueryHandler(db *gorm.DB) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{db: db}
}

// Handle executes the query. A courier with no recorded activity yields a
// zero-valued response rather than an error: absence of history is a valid
// answer, not a missing object.
func (h GetCourierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatsQuery,
) (GetCourierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierStatsQueryResponse{}, err
	}

	resp := GetCourierStatsQueryResponse{CourierID: query.CourierID()}

	var totalResponseMs int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			accepted_count,
			terminal_count,
			total_response_ms
		FROM courier_stats
		WHERE courier_id = ?
	`, query.CourierID().Bytes()).Row()

	err := row.Scan(&resp.AcceptedCount, &resp.TerminalCount, &totalResponseMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, nil
		}
		return GetCourierStatsQueryResponse{}, err
	}

	if samples := resp.AcceptedCount + resp.TerminalCount; samples > 0 {
		resp.AverageResponseMs = totalResponseMs / samples
	}

	return resp, nil
}
