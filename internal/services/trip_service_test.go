package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/metrics"
	gormModels "charter-ops/hangar/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s constants.TripStatus) *constants.TripStatus { return &s }

func TestTripService_CreateComputesEstimates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	pilot := env.seedPilot(t, owner.ID, "Amelia")

	trip, err := env.tripSvc.Create(ctx, owner.ID, CreateTripInput{
		PlaneID:          plane.ID,
		PilotID:          &pilot.ID,
		DepartureAirport: " kjfk ",
		ArrivalAirport:   "klax",
		DepartureTime:    testDeparture,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "KJFK", trip.DepartureAirport)
	assert.Equal(t, "KLAX", trip.ArrivalAirport)
	assert.Equal(t, constants.TripScheduled, trip.Status)
	assert.Equal(t, int64(11330), trip.EstimatedFuelCost)
	assert.Equal(t, int64(14163), trip.EstimatedTotalCost)
	assert.Equal(t, testDeparture.Add(2*time.Hour), trip.EstimatedArrivalTime)
	require.NotNil(t, trip.PilotID)
	assert.Equal(t, pilot.ID, *trip.PilotID)
	assert.Nil(t, trip.ActualDepartureTime)
	assert.Nil(t, trip.ActualArrivalTime)

	stored, err := env.tripSvc.Get(ctx, owner.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(14163), stored.EstimatedTotalCost)
}

func TestTripService_CreateUnknownAirportInsertsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)

	_, err := env.tripSvc.Create(ctx, owner.ID, CreateTripInput{
		PlaneID:          plane.ID,
		DepartureAirport: "KJFK",
		ArrivalAirport:   "ZZZZ",
		DepartureTime:    testDeparture,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCostEstimationFailed))
	assert.True(t, errors.Is(err, ErrAirportNotFound))

	trips, err := env.tripSvc.List(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestTripService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)

	cases := map[string]CreateTripInput{
		"missing plane":     {DepartureAirport: "KJFK", ArrivalAirport: "KLAX", DepartureTime: testDeparture},
		"missing departure": {PlaneID: plane.ID, ArrivalAirport: "KLAX", DepartureTime: testDeparture},
		"missing arrival":   {PlaneID: plane.ID, DepartureAirport: "KJFK", DepartureTime: testDeparture},
		"missing time":      {PlaneID: plane.ID, DepartureAirport: "KJFK", ArrivalAirport: "KLAX"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.tripSvc.Create(ctx, owner.ID, in)
			assert.True(t, errors.Is(err, ErrValidation), "got %v", err)
		})
	}
}

func TestTripService_CreateRejectsForeignPlaneAndPilot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	other := env.seedAccount(t, "ops@rival.test")
	ownPlane := env.seedPlane(t, owner.ID, "N100AC", 2)
	foreignPlane := env.seedPlane(t, other.ID, "N200RV", 2)
	foreignPilot := env.seedPilot(t, other.ID, "Bessie")

	_, err := env.tripSvc.Create(ctx, owner.ID, CreateTripInput{
		PlaneID: foreignPlane.ID, DepartureAirport: "KJFK", ArrivalAirport: "KLAX", DepartureTime: testDeparture,
	})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = env.tripSvc.Create(ctx, owner.ID, CreateTripInput{
		PlaneID: ownPlane.ID, PilotID: &foreignPilot.ID, DepartureAirport: "KJFK", ArrivalAirport: "KLAX", DepartureTime: testDeparture,
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTripService_GetIsOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	other := env.seedAccount(t, "ops@rival.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	_, err := env.tripSvc.Get(ctx, other.ID, trip.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = env.tripSvc.Get(ctx, owner.ID, "does-not-exist")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTripService_ListFiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	first := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")
	env.seedTrip(t, owner.ID, plane.ID, "KLAX", "KJFK")

	_, err := env.tripSvc.Update(ctx, owner.ID, first.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)

	all, err := env.tripSvc.List(ctx, owner.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	departed, err := env.tripSvc.List(ctx, owner.ID, "DEPARTED")
	require.NoError(t, err)
	require.Len(t, departed, 1)
	assert.Equal(t, first.ID, departed[0].ID)

	_, err = env.tripSvc.List(ctx, owner.ID, "cancelled")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestTripService_StatusStampsActualTimes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	departedAt := time.Date(2026, 6, 1, 14, 5, 0, 0, time.UTC)
	env.tripSvc.now = func() time.Time { return departedAt }

	updated, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)
	assert.Equal(t, constants.TripDeparted, updated.Status)
	require.NotNil(t, updated.ActualDepartureTime)
	assert.True(t, departedAt.Equal(*updated.ActualDepartureTime))
	assert.Nil(t, updated.ActualArrivalTime)

	arrivedAt := departedAt.Add(5 * time.Hour)
	env.tripSvc.now = func() time.Time { return arrivedAt }

	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripArrived)})
	require.NoError(t, err)
	require.NotNil(t, updated.ActualArrivalTime)
	assert.True(t, arrivedAt.Equal(*updated.ActualArrivalTime))
	assert.True(t, departedAt.Equal(*updated.ActualDepartureTime), "departure stamp must be kept")
}

func TestTripService_StatusDoesNotOverwriteActualTimes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	reported := time.Date(2026, 6, 1, 13, 55, 0, 0, time.UTC)
	updated, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{ActualDepartureTime: &reported})
	require.NoError(t, err)
	assert.Equal(t, constants.TripScheduled, updated.Status)

	env.tripSvc.now = func() time.Time { return reported.Add(time.Hour) }
	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)
	require.NotNil(t, updated.ActualDepartureTime)
	assert.True(t, reported.Equal(*updated.ActualDepartureTime))

	// a client-supplied time in the same patch wins over the stamp
	arrived := reported.Add(4 * time.Hour)
	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{
		Status:            statusPtr(constants.TripArrived),
		ActualArrivalTime: &arrived,
	})
	require.NoError(t, err)
	assert.True(t, arrived.Equal(*updated.ActualArrivalTime))
}

func TestTripService_SkipToArrivedStampsOnlyArrival(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	updated, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripArrived)})
	require.NoError(t, err)
	assert.Nil(t, updated.ActualDepartureTime)
	assert.NotNil(t, updated.ActualArrivalTime)
}

func TestTripService_RejectsBackwardTransition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	_, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripArrived)})
	require.NoError(t, err)

	_, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripScheduled)})
	assert.True(t, errors.Is(err, ErrInvalidState))

	_, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr("boarding")})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestTripService_UpdateRecomputesOnlyOnRouteOrPlaneChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	twin := env.seedPlane(t, owner.ID, "N100AC", 2)
	quad := env.seedPlane(t, owner.ID, "N747Q", 4)
	pilot := env.seedPilot(t, owner.ID, "Amelia")
	trip := env.seedTrip(t, owner.ID, twin.ID, "KJFK", "KLAX")

	// pilot and schedule changes keep the stored estimate
	later := testDeparture.Add(3 * time.Hour)
	updated, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{PilotID: &pilot.ID, DepartureTime: &later})
	require.NoError(t, err)
	assert.Equal(t, int64(14163), updated.EstimatedTotalCost)
	assert.Equal(t, later.Add(2*time.Hour), updated.EstimatedArrivalTime)

	// same values do not count as a change
	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{PlaneID: &twin.ID, ArrivalAirport: strPtr("klax")})
	require.NoError(t, err)
	assert.Equal(t, int64(14163), updated.EstimatedTotalCost)

	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{PlaneID: &quad.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(22661), updated.EstimatedFuelCost)
	assert.Equal(t, int64(28326), updated.EstimatedTotalCost)

	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{DepartureAirport: strPtr("EGLL"), ArrivalAirport: strPtr("KJFK")})
	require.NoError(t, err)
	assert.Equal(t, int64(31587), updated.EstimatedFuelCost)
	assert.Equal(t, int64(39483), updated.EstimatedTotalCost)

	stored, err := env.tripSvc.Get(ctx, owner.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(39483), stored.EstimatedTotalCost)
}

func TestTripService_UpdateKeepsEstimateWhenPlaneEditedElsewhere(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	_, err := env.planeSvc.Update(ctx, owner.ID, plane.ID, PlanePatch{NumEngines: intPtr(4)})
	require.NoError(t, err)

	updated, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)
	assert.Equal(t, int64(14163), updated.EstimatedTotalCost)
}

func TestTripService_UpdateFailedEstimateLeavesTripUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	_, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{ArrivalAirport: strPtr("ZZZZ")})
	assert.True(t, errors.Is(err, ErrCostEstimationFailed))

	stored, err := env.tripSvc.Get(ctx, owner.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "KLAX", stored.ArrivalAirport)
	assert.Equal(t, int64(14163), stored.EstimatedTotalCost)
}

func TestTripService_UnassignPilot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	pilot := env.seedPilot(t, owner.ID, "Amelia")
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	updated, err := env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{PilotID: &pilot.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.PilotID)

	updated, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{PilotID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.PilotID)

	stored, err := env.tripSvc.Get(ctx, owner.ID, trip.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PilotID)
}

func TestTripService_DeleteOnlyScheduled(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	scheduled := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")
	departed := env.seedTrip(t, owner.ID, plane.ID, "KLAX", "KJFK")
	arrived := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "EGLL")

	_, err := env.tripSvc.Update(ctx, owner.ID, departed.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)
	_, err = env.tripSvc.Update(ctx, owner.ID, arrived.ID, TripPatch{Status: statusPtr(constants.TripArrived)})
	require.NoError(t, err)

	require.NoError(t, env.tripSvc.Delete(ctx, owner.ID, scheduled.ID))
	_, err = env.tripSvc.Get(ctx, owner.ID, scheduled.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	for _, id := range []string{departed.ID, arrived.ID} {
		err := env.tripSvc.Delete(ctx, owner.ID, id)
		assert.True(t, errors.Is(err, ErrInvalidState))
		_, err = env.tripSvc.Get(ctx, owner.ID, id)
		assert.NoError(t, err)
	}

	assert.True(t, errors.Is(env.tripSvc.Delete(ctx, owner.ID, "missing"), ErrNotFound))
}

func TestTripService_Route(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")

	route, err := env.tripSvc.Route(ctx, owner.ID, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "KJFK", route.Departure.ICAO)
	assert.Equal(t, "KLAX", route.Arrival.ICAO)
	assert.Equal(t, [2]float64{-73.7789, 40.6398}, route.Departure.Coordinates())
	assert.InDelta(t, 2145.9, route.DistanceNM, 0.1)
}

func TestTripService_StatusListenersAndMetrics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	env.tripSvc.WithMetrics(reg)

	type change struct{ from, to constants.TripStatus }
	var changes []change
	env.tripSvc.OnStatusChange(func(trip *gormModels.Trip, from, to constants.TripStatus) {
		changes = append(changes, change{from, to})
	})

	owner := env.seedAccount(t, "ops@acme.test")
	plane := env.seedPlane(t, owner.ID, "N100AC", 2)
	trip := env.seedTrip(t, owner.ID, plane.ID, "KJFK", "KLAX")
	_, err := env.tripSvc.Create(ctx, owner.ID, CreateTripInput{
		PlaneID: plane.ID, DepartureAirport: "KJFK", ArrivalAirport: "ZZZZ", DepartureTime: testDeparture,
	})
	require.Error(t, err)

	_, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)
	// repeating the current status is not a change
	_, err = env.tripSvc.Update(ctx, owner.ID, trip.ID, TripPatch{Status: statusPtr(constants.TripDeparted)})
	require.NoError(t, err)

	assert.Equal(t, []change{{constants.TripScheduled, constants.TripDeparted}}, changes)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.TripsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.TripStatusChanges.WithLabelValues("departed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.CostEstimatesTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.CostEstimatesTotal.WithLabelValues("failed")))
}
