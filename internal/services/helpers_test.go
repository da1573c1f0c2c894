package services

import (
	"context"
	"testing"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/db"
	"charter-ops/hangar/internal/db/dbtest"
	"charter-ops/hangar/internal/db/repositories"
	gormModels "charter-ops/hangar/internal/models/gorm"

	"github.com/stretchr/testify/require"
)

var testAirports = []common.Airport{
	{ICAO: "KJFK", IATA: "JFK", Name: "John F Kennedy International Airport", City: "New York", Country: "US", Latitude: 40.6398, Longitude: -73.7789},
	{ICAO: "KLAX", IATA: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "US", Latitude: 33.9425, Longitude: -118.4081},
	{ICAO: "EGLL", IATA: "LHR", Name: "London Heathrow Airport", City: "London", Country: "GB", Latitude: 51.4706, Longitude: -0.461941},
	{ICAO: "KTEB", IATA: "TEB", Name: "Teterboro Airport", City: "Teterboro", Country: "US", Latitude: 40.8501, Longitude: -74.0608},
	{ICAO: "KJAC", IATA: "JAC", Name: "Jackson Hole Airport", City: "Jackson", Country: "US", Latitude: 43.6073, Longitude: -110.738},
}

var testDeparture = time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

type testEnv struct {
	db      *db.Database
	catalog *common.AirportCatalog
	planes  *repositories.PlaneRepository
	pilots  *repositories.PilotRepository
	trips   *repositories.TripRepository

	planeSvc *PlaneService
	pilotSvc *PilotService
	tripSvc  *TripService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database := dbtest.Open(t)
	catalog := common.NewAirportCatalog(testAirports)

	env := &testEnv{
		db:      database,
		catalog: catalog,
		planes:  repositories.NewPlaneRepository(database.ORM),
		pilots:  repositories.NewPilotRepository(database.ORM),
		trips:   repositories.NewTripRepository(database.ORM),
	}
	env.planeSvc = NewPlaneService(env.planes)
	env.pilotSvc = NewPilotService(env.pilots)
	env.tripSvc = NewTripService(env.trips, env.planes, env.pilots, catalog)

	return env
}

func (e *testEnv) seedAccount(t *testing.T, email string) *gormModels.Account {
	t.Helper()
	account := &gormModels.Account{CompanyName: "Acme Charter", Email: email, PasswordHash: "x"}
	require.NoError(t, repositories.NewAccountRepository(e.db.ORM).Create(context.Background(), account))
	return account
}

func (e *testEnv) seedPlane(t *testing.T, ownerID, tail string, engines int) *gormModels.Plane {
	t.Helper()
	plane, err := e.planeSvc.Create(context.Background(), ownerID, PlaneInput{
		TailNumber:   tail,
		Model:        "Citation X",
		Manufacturer: "Cessna",
		NumEngines:   &engines,
	})
	require.NoError(t, err)
	return plane
}

func (e *testEnv) seedPilot(t *testing.T, ownerID, name string) *gormModels.Pilot {
	t.Helper()
	pilot, err := e.pilotSvc.Create(context.Background(), ownerID, PilotInput{Name: name, LicenseNumber: "ATP-" + name})
	require.NoError(t, err)
	return pilot
}

func (e *testEnv) seedTrip(t *testing.T, ownerID, planeID, dep, arr string) *gormModels.Trip {
	t.Helper()
	trip, err := e.tripSvc.Create(context.Background(), ownerID, CreateTripInput{
		PlaneID:          planeID,
		DepartureAirport: dep,
		ArrivalAirport:   arr,
		DepartureTime:    testDeparture,
	})
	require.NoError(t, err)
	return trip
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
