package repositories

import (
	"context"
	"fmt"

	"charter-ops/hangar/internal/constants"

	"github.com/jmoiron/sqlx"
)

// TripStatusStat is one row of the per-status trip aggregate
type TripStatusStat struct {
	Status    constants.TripStatus `db:"status"`
	TripCount int64                `db:"trip_count"`
	TotalCost int64                `db:"total_cost"`
}

// TripStatsRepository runs aggregate queries with sqlx
type TripStatsRepository struct {
	db *sqlx.DB
}

func NewTripStatsRepository(db *sqlx.DB) *TripStatsRepository {
	return &TripStatsRepository{db: db}
}

// StatsByStatus returns trip counts and summed estimated totals grouped by status
func (r *TripStatsRepository) StatsByStatus(ctx context.Context, ownerID string) ([]TripStatusStat, error) {
	stats := []TripStatusStat{}

	if err := r.db.SelectContext(ctx, &stats, r.db.Rebind(constants.TripStatsByOwner), ownerID); err != nil {
		return nil, fmt.Errorf("failed to load trip stats: %w", err)
	}

	return stats, nil
}

// Ping checks the underlying connection
func (r *TripStatsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
