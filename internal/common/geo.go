package common

import "math"

// EarthRadiusNM is the mean Earth radius in nautical miles
const EarthRadiusNM = 3440.065

// DistanceNauticalMiles returns the great-circle distance between two points using the haversine formula
func DistanceNauticalMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusNM * c
}

// DistanceBetween is DistanceNauticalMiles for two catalog airports
func DistanceBetween(from, to Airport) float64 {
	return DistanceNauticalMiles(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
