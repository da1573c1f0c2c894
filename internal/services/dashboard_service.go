package services

import (
	"context"

	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/db/repositories"
	"charter-ops/hangar/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

// DashboardService builds the per-account fleet summary
type DashboardService struct {
	planes *repositories.PlaneRepository
	pilots *repositories.PilotRepository
	stats  *repositories.TripStatsRepository
}

func NewDashboardService(
	planes *repositories.PlaneRepository,
	pilots *repositories.PilotRepository,
	stats *repositories.TripStatsRepository,
) *DashboardService {
	return &DashboardService{planes: planes, pilots: pilots, stats: stats}
}

// Summary counts planes, pilots and trips per status for the owner
func (s *DashboardService) Summary(ctx context.Context, ownerID string) (*dtos.DashboardSummary, error) {
	var (
		planes, pilots int64
		stats          []repositories.TripStatusStat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.planes.CountByOwner(gctx, ownerID)
		planes = n
		return err
	})
	g.Go(func() error {
		n, err := s.pilots.CountByOwner(gctx, ownerID)
		pilots = n
		return err
	})
	g.Go(func() error {
		rows, err := s.stats.StatsByStatus(gctx, ownerID)
		stats = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &dtos.DashboardSummary{Planes: planes, Pilots: pilots}
	for _, row := range stats {
		switch row.Status {
		case constants.TripScheduled:
			summary.Trips.Scheduled = row.TripCount
		case constants.TripDeparted:
			summary.Trips.Departed = row.TripCount
		case constants.TripArrived:
			summary.Trips.Arrived = row.TripCount
		}
		summary.Trips.Total += row.TripCount
		summary.EstimatedTotalCost += row.TotalCost
	}

	return summary, nil
}
