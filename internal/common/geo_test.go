package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	kjfk = Airport{ICAO: "KJFK", Latitude: 40.6398, Longitude: -73.7789}
	klax = Airport{ICAO: "KLAX", Latitude: 33.9425, Longitude: -118.4081}
	egll = Airport{ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.461941}
)

func TestDistanceNauticalMiles_JFKToLAX(t *testing.T) {
	d := DistanceBetween(kjfk, klax)
	assert.InDelta(t, 2145.9, d, 0.5)
}

func TestDistanceNauticalMiles_Symmetric(t *testing.T) {
	pairs := [][2]Airport{{kjfk, klax}, {kjfk, egll}, {klax, egll}}
	for _, p := range pairs {
		assert.InDelta(t, DistanceBetween(p[0], p[1]), DistanceBetween(p[1], p[0]), 1e-9)
	}
}

func TestDistanceNauticalMiles_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceBetween(kjfk, kjfk))
	assert.Equal(t, 0.0, DistanceBetween(egll, egll))
}

func TestDistanceNauticalMiles_NaNPropagates(t *testing.T) {
	d := DistanceNauticalMiles(math.NaN(), 0, 10, 10)
	assert.True(t, math.IsNaN(d))
}
