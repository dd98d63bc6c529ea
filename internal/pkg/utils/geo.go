package utils

import "math"

const (
	earthRadiusM  = 6371000.0
	earthRadiusKm = earthRadiusM / 1000
)

// HaversineMeters returns the great-circle distance between two points in metres.
// Inputs are degrees; callers reject NaN or out-of-range coordinates first.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return earthRadiusM * centralAngle(lat1, lon1, lat2, lon2)
}

// HaversineDistance returns the great-circle distance between two points in kilometres.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return earthRadiusKm * centralAngle(lat1, lon1, lat2, lon2)
}

func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	// rounding can push a a hair above 1 for antipodal points
	a = math.Min(1, math.Max(0, a))

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// ValidateCoordinates reports whether lat/lon are finite and inside the WGS84 ranges.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// KmToMeters converts a radius expressed in kilometres.
func KmToMeters(km float64) float64 {
	return km * 1000
}
