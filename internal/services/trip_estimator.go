package services

import (
	"fmt"
	"math"
	"time"

	"charter-ops/hangar/internal/common"
)

const (
	// GallonsPerEnginePer500NM is the linear fuel-burn heuristic: 220 gal per engine per 500 nm
	GallonsPerEnginePer500NM = 220.0
	FuelPricePerGallon       = 6.0
	// NonFuelCostMarkup covers crew, fees and maintenance on top of fuel
	NonFuelCostMarkup = 1.25

	// EstimatedFlightDuration is applied to every trip regardless of distance
	EstimatedFlightDuration = 2 * time.Hour
)

// AirportLookup resolves ICAO codes to airports
type AirportLookup interface {
	LookupByCode(icao string) (common.Airport, bool)
}

// TripEstimate is a point estimate for one trip. Costs are whole dollars.
type TripEstimate struct {
	DistanceNM  float64 `json:"distance_nm"`
	FuelGallons float64 `json:"fuel_gallons"`
	FuelCost    int64   `json:"fuel_cost"`
	TotalCost   int64   `json:"total_cost"`
}

// TripCostEstimator derives fuel and total cost from the great-circle distance and engine count
type TripCostEstimator struct {
	airports AirportLookup
}

func NewTripCostEstimator(airports AirportLookup) *TripCostEstimator {
	return &TripCostEstimator{airports: airports}
}

// Estimate is a pure function of the airport pair and engine count.
func (e *TripCostEstimator) Estimate(departureICAO, arrivalICAO string, numEngines int) (TripEstimate, error) {
	dep, ok := e.airports.LookupByCode(departureICAO)
	if !ok {
		return TripEstimate{}, fmt.Errorf("%w: %s", ErrAirportNotFound, common.NormalizeICAO(departureICAO))
	}
	arr, ok := e.airports.LookupByCode(arrivalICAO)
	if !ok {
		return TripEstimate{}, fmt.Errorf("%w: %s", ErrAirportNotFound, common.NormalizeICAO(arrivalICAO))
	}

	if numEngines < 1 {
		return TripEstimate{}, fmt.Errorf("%w: engine count %d", ErrInvalidAircraft, numEngines)
	}

	distance := common.DistanceBetween(dep, arr)
	gallons := (GallonsPerEnginePer500NM * float64(numEngines) / 500) * distance
	fuelCost := gallons * FuelPricePerGallon

	return TripEstimate{
		DistanceNM:  distance,
		FuelGallons: gallons,
		FuelCost:    int64(math.Round(fuelCost)),
		TotalCost:   int64(math.Round(fuelCost * NonFuelCostMarkup)),
	}, nil
}

// EstimateArrival returns the estimated arrival for a departure time
func EstimateArrival(departure time.Time) time.Time {
	return departure.Add(EstimatedFlightDuration)
}
