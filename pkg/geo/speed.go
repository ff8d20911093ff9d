package geo

import (
	"errors"
	"time"
)

// KmPerMile converts statute miles to kilometers.
const KmPerMile = 1.60934

// ErrNonPositiveDuration is returned when a trip ends at or before it starts.
var ErrNonPositiveDuration = errors.New("trip duration must be positive")

// MilesToKm converts a distance in miles to kilometers.
func MilesToKm(miles float64) float64 {
	return miles * KmPerMile
}

// SpeedKmh returns the average speed in km/h of a trip covering miles in d.
func SpeedKmh(miles float64, d time.Duration) (float64, error) {
	if d <= 0 {
		return 0, ErrNonPositiveDuration
	}
	return MilesToKm(miles) / d.Hours(), nil
}
