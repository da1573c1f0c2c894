package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/db/repositories"
	"charter-ops/hangar/internal/logging"
	"charter-ops/hangar/internal/metrics"
	gormModels "charter-ops/hangar/internal/models/gorm"
)

// CreateTripInput holds the client-supplied fields of a new trip
type CreateTripInput struct {
	PlaneID          string
	PilotID          *string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    time.Time
}

// TripPatch lists the fields to change on a trip; nil fields are left untouched.
// A PilotID pointing at an empty string unassigns the pilot.
type TripPatch struct {
	PlaneID             *string
	PilotID             *string
	DepartureAirport    *string
	ArrivalAirport      *string
	DepartureTime       *time.Time
	Status              *constants.TripStatus
	ActualDepartureTime *time.Time
	ActualArrivalTime   *time.Time
}

// TripRoute is a trip with both endpoints resolved for map rendering
type TripRoute struct {
	Trip       *gormModels.Trip
	Departure  common.Airport
	Arrival    common.Airport
	DistanceNM float64
}

// TripStatusListener is notified after a trip status change has been persisted
type TripStatusListener func(trip *gormModels.Trip, from, to constants.TripStatus)

// TripService applies the trip business rules on top of the trip repository
type TripService struct {
	trips     *repositories.TripRepository
	planes    *repositories.PlaneRepository
	pilots    *repositories.PilotRepository
	airports  AirportLookup
	estimator *TripCostEstimator
	listeners []TripStatusListener
	metrics   *metrics.MetricsRegistry
	now       func() time.Time
}

func NewTripService(
	trips *repositories.TripRepository,
	planes *repositories.PlaneRepository,
	pilots *repositories.PilotRepository,
	airports AirportLookup,
) *TripService {
	return &TripService{
		trips:     trips,
		planes:    planes,
		pilots:    pilots,
		airports:  airports,
		estimator: NewTripCostEstimator(airports),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithMetrics enables the trip business counters. A nil registry disables them.
func (s *TripService) WithMetrics(m *metrics.MetricsRegistry) *TripService {
	s.metrics = m
	return s
}

// OnStatusChange registers a listener. Listeners must be registered before serving requests.
func (s *TripService) OnStatusChange(l TripStatusListener) {
	s.listeners = append(s.listeners, l)
}

// Create schedules a new trip. Nothing is inserted when the cost cannot be estimated.
func (s *TripService) Create(ctx context.Context, ownerID string, in CreateTripInput) (*gormModels.Trip, error) {
	dep := common.NormalizeICAO(in.DepartureAirport)
	arr := common.NormalizeICAO(in.ArrivalAirport)
	planeID := strings.TrimSpace(in.PlaneID)

	switch {
	case planeID == "":
		return nil, newError(ErrValidation, "plane_id is required")
	case dep == "":
		return nil, newError(ErrValidation, "departure_airport is required")
	case arr == "":
		return nil, newError(ErrValidation, "arrival_airport is required")
	case in.DepartureTime.IsZero():
		return nil, newError(ErrValidation, "departure_time is required")
	}

	plane, err := s.loadPlane(ctx, ownerID, planeID)
	if err != nil {
		return nil, err
	}

	var pilotID *string
	if in.PilotID != nil && strings.TrimSpace(*in.PilotID) != "" {
		pilot, err := s.loadPilot(ctx, ownerID, strings.TrimSpace(*in.PilotID))
		if err != nil {
			return nil, err
		}
		pilotID = &pilot.ID
	}

	estimate, err := s.estimate(dep, arr, plane.NumEngines)
	if err != nil {
		return nil, err
	}

	departure := in.DepartureTime.UTC()
	trip := &gormModels.Trip{
		OwnerID:              ownerID,
		PlaneID:              plane.ID,
		PilotID:              pilotID,
		DepartureAirport:     dep,
		ArrivalAirport:       arr,
		DepartureTime:        departure,
		EstimatedArrivalTime: EstimateArrival(departure),
		Status:               constants.TripScheduled,
		EstimatedFuelCost:    estimate.FuelCost,
		EstimatedTotalCost:   estimate.TotalCost,
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	if s.metrics != nil {
		s.metrics.TripsCreatedTotal.Inc()
	}

	logging.Info("Trip scheduled",
		"trip_id", trip.ID,
		"owner_id", ownerID,
		"route", dep+"-"+arr,
		"distance_nm", int(estimate.DistanceNM),
		"total_cost", estimate.TotalCost,
	)

	return trip, nil
}

// Get returns one of the owner's trips
func (s *TripService) Get(ctx context.Context, ownerID, tripID string) (*gormModels.Trip, error) {
	trip, err := s.trips.FindByID(ctx, ownerID, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, newError(ErrNotFound, constants.MsgTripNotFound)
	}
	return trip, nil
}

// List returns the owner's trips; an empty status lists every trip
func (s *TripService) List(ctx context.Context, ownerID string, status string) ([]gormModels.Trip, error) {
	if status == "" {
		return s.trips.List(ctx, ownerID, nil)
	}

	st := constants.TripStatus(strings.ToLower(status))
	if !st.IsValid() {
		return nil, newError(ErrValidation, fmt.Sprintf("unknown trip status %q", status))
	}
	return s.trips.List(ctx, ownerID, &st)
}

// Update applies patch to the trip. Costs are recomputed only when the plane or an airport changes.
func (s *TripService) Update(ctx context.Context, ownerID, tripID string, patch TripPatch) (*gormModels.Trip, error) {
	current, err := s.Get(ctx, ownerID, tripID)
	if err != nil {
		return nil, err
	}

	updated := *current
	recompute := false
	var plane *gormModels.Plane

	if patch.PlaneID != nil {
		planeID := strings.TrimSpace(*patch.PlaneID)
		if planeID == "" {
			return nil, newError(ErrValidation, "plane_id cannot be empty")
		}
		if planeID != current.PlaneID {
			if plane, err = s.loadPlane(ctx, ownerID, planeID); err != nil {
				return nil, err
			}
			updated.PlaneID = plane.ID
			recompute = true
		}
	}

	if patch.PilotID != nil {
		pilotID := strings.TrimSpace(*patch.PilotID)
		if pilotID == "" {
			updated.PilotID = nil
		} else {
			pilot, err := s.loadPilot(ctx, ownerID, pilotID)
			if err != nil {
				return nil, err
			}
			updated.PilotID = &pilot.ID
		}
	}

	if patch.DepartureAirport != nil {
		dep := common.NormalizeICAO(*patch.DepartureAirport)
		if dep == "" {
			return nil, newError(ErrValidation, "departure_airport cannot be empty")
		}
		if dep != current.DepartureAirport {
			updated.DepartureAirport = dep
			recompute = true
		}
	}

	if patch.ArrivalAirport != nil {
		arr := common.NormalizeICAO(*patch.ArrivalAirport)
		if arr == "" {
			return nil, newError(ErrValidation, "arrival_airport cannot be empty")
		}
		if arr != current.ArrivalAirport {
			updated.ArrivalAirport = arr
			recompute = true
		}
	}

	if patch.DepartureTime != nil {
		if patch.DepartureTime.IsZero() {
			return nil, newError(ErrValidation, "departure_time cannot be empty")
		}
		departure := patch.DepartureTime.UTC()
		updated.DepartureTime = departure
		updated.EstimatedArrivalTime = EstimateArrival(departure)
	}

	if patch.ActualDepartureTime != nil {
		t := patch.ActualDepartureTime.UTC()
		updated.ActualDepartureTime = &t
	}
	if patch.ActualArrivalTime != nil {
		t := patch.ActualArrivalTime.UTC()
		updated.ActualArrivalTime = &t
	}

	if patch.Status != nil {
		next := *patch.Status
		if !next.IsValid() {
			return nil, newError(ErrValidation, fmt.Sprintf("unknown trip status %q", next))
		}
		if !current.Status.CanTransitionTo(next) {
			return nil, newError(ErrInvalidState,
				fmt.Sprintf("trip cannot move from %s back to %s", current.Status, next))
		}
		updated.Status = next

		now := s.now()
		switch next {
		case constants.TripDeparted:
			if updated.ActualDepartureTime == nil {
				updated.ActualDepartureTime = &now
			}
		case constants.TripArrived:
			if updated.ActualArrivalTime == nil {
				updated.ActualArrivalTime = &now
			}
		}
	}

	if recompute {
		if plane == nil {
			if plane, err = s.loadPlane(ctx, ownerID, updated.PlaneID); err != nil {
				return nil, err
			}
		}
		estimate, err := s.estimate(updated.DepartureAirport, updated.ArrivalAirport, plane.NumEngines)
		if err != nil {
			return nil, err
		}
		updated.EstimatedFuelCost = estimate.FuelCost
		updated.EstimatedTotalCost = estimate.TotalCost
	}

	if err := s.trips.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	if updated.Status != current.Status {
		logging.Info("Trip status changed",
			"trip_id", updated.ID,
			"from", current.Status,
			"to", updated.Status,
		)
		if s.metrics != nil {
			s.metrics.TripStatusChanges.WithLabelValues(string(updated.Status)).Inc()
		}
		for _, l := range s.listeners {
			l(&updated, current.Status, updated.Status)
		}
	}

	return &updated, nil
}

// Delete removes a scheduled trip. Departed and arrived trips are kept as history.
func (s *TripService) Delete(ctx context.Context, ownerID, tripID string) error {
	trip, err := s.Get(ctx, ownerID, tripID)
	if err != nil {
		return err
	}
	if trip.Status != constants.TripScheduled {
		return newError(ErrInvalidState, constants.MsgTripNotDeletable)
	}

	deleted, err := s.trips.DeleteScheduled(ctx, ownerID, tripID)
	if err != nil {
		return err
	}
	if !deleted {
		// status changed between the read and the delete
		return newError(ErrInvalidState, constants.MsgTripNotDeletable)
	}

	logging.Info("Trip deleted", "trip_id", tripID, "owner_id", ownerID)
	return nil
}

// Route resolves both trip endpoints against the airport catalog
func (s *TripService) Route(ctx context.Context, ownerID, tripID string) (*TripRoute, error) {
	trip, err := s.Get(ctx, ownerID, tripID)
	if err != nil {
		return nil, err
	}

	dep, ok := s.airports.LookupByCode(trip.DepartureAirport)
	if !ok {
		return nil, wrapError(ErrNotFound, "unknown ICAO code", fmt.Errorf("%w: %s", ErrAirportNotFound, trip.DepartureAirport))
	}
	arr, ok := s.airports.LookupByCode(trip.ArrivalAirport)
	if !ok {
		return nil, wrapError(ErrNotFound, "unknown ICAO code", fmt.Errorf("%w: %s", ErrAirportNotFound, trip.ArrivalAirport))
	}

	return &TripRoute{
		Trip:       trip,
		Departure:  dep,
		Arrival:    arr,
		DistanceNM: common.DistanceBetween(dep, arr),
	}, nil
}

func (s *TripService) estimate(dep, arr string, numEngines int) (TripEstimate, error) {
	estimate, err := s.estimator.Estimate(dep, arr, numEngines)
	if s.metrics != nil {
		result := "ok"
		if err != nil {
			result = "failed"
		}
		s.metrics.CostEstimatesTotal.WithLabelValues(result).Inc()
	}
	if err != nil {
		return TripEstimate{}, wrapError(ErrCostEstimationFailed, "cost estimation failed", err)
	}
	return estimate, nil
}

func (s *TripService) loadPlane(ctx context.Context, ownerID, planeID string) (*gormModels.Plane, error) {
	plane, err := s.planes.FindByID(ctx, ownerID, planeID)
	if err != nil {
		return nil, err
	}
	if plane == nil {
		return nil, newError(ErrNotFound, constants.MsgAircraftNotFound)
	}
	return plane, nil
}

func (s *TripService) loadPilot(ctx context.Context, ownerID, pilotID string) (*gormModels.Pilot, error) {
	pilot, err := s.pilots.FindByID(ctx, ownerID, pilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, newError(ErrNotFound, constants.MsgPilotNotFound)
	}
	return pilot, nil
}
