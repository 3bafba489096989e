package utils

import (
	"math"
)

const (
	// EarthRadiusMiles is the mean Earth radius used by the haversine formula.
	EarthRadiusMiles = 3959.0

	// RoadCircuityFactor inflates straight-line distance to approximate
	// real driving distance when no routed distance is available.
	RoadCircuityFactor = 1.5
)

func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// HaversineMiles returns the great-circle distance between two points in miles.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := DegreesToRadians(lat1)
	lat2Rad := DegreesToRadians(lat2)
	dLat := DegreesToRadians(lat2 - lat1)
	dLon := DegreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// EstimateRoadMiles approximates driving distance from a straight line.
func EstimateRoadMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineMiles(lat1, lon1, lat2, lon2) * RoadCircuityFactor
}

// EstimateDriveMinutes derives a drive-time estimate from road distance.
// The constants mirror observed city driving: ~20 mph plus pickup overhead.
func EstimateDriveMinutes(distanceMiles float64) float64 {
	return distanceMiles*3 + 5
}

func MetersToMiles(meters float64) float64 {
	return meters * 0.000621371
}

func SecondsToMinutes(seconds float64) float64 {
	return seconds / 60
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
