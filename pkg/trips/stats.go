package trips

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/exp/constraints"

	"taxi_stats/pkg/geo"
	"taxi_stats/pkg/logger"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summary holds min, max and mean of a sample. All fields are zero for an
// empty sample.
type Summary[T Number] struct {
	Min   T       `json:"min"`
	Max   T       `json:"max"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// Summarize accumulates values in a single pass.
func Summarize[T Number](values []T) Summary[T] {
	if len(values) == 0 {
		return Summary[T]{}
	}
	s := Summary[T]{Min: values[0], Max: values[0]}
	var sum float64
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += float64(v)
	}
	s.Count = len(values)
	s.Avg = sum / float64(s.Count)
	return s
}

// CalculateStats summarizes every domain. Values are taken as recorded, so
// fractional passenger counts are not truncated here as they are by Extract.
func CalculateStats(records []Record) map[Domain]Summary[float64] {
	stats := make(map[Domain]Summary[float64], len(Domains))
	for _, d := range Domains {
		stats[d] = Summarize(parseValues(records, d, false))
	}
	return stats
}

// Speeds returns the average speed in km/h of every trip with a positive
// duration. Rows whose timestamps or distance do not parse are skipped.
func Speeds(records []Record) []float64 {
	speeds := make([]float64, 0, len(records))
	skipped := 0
	for i := range records {
		r := &records[i]
		pickup, err := dateparse.ParseIn(r.PickupTime, time.UTC)
		if err != nil {
			skipped++
			continue
		}
		dropoff, err := dateparse.ParseIn(r.DropoffTime, time.UTC)
		if err != nil {
			skipped++
			continue
		}
		miles, err := strconv.ParseFloat(r.TripDistance, 64)
		if err != nil {
			skipped++
			continue
		}
		kmh, err := geo.SpeedKmh(miles, dropoff.Sub(pickup))
		if err != nil {
			continue
		}
		speeds = append(speeds, kmh)
	}
	if skipped > 0 {
		logger.Debug("Skipped unparseable trips", "count", skipped)
	}
	return speeds
}

// SpeedStats summarizes trip speeds in km/h.
func SpeedStats(records []Record) Summary[float64] {
	return Summarize(Speeds(records))
}
