package trips

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"taxi_stats/pkg/logger"
)

// Domain selects a numeric column of the dataset.
type Domain int

const (
	PassengerCount Domain = iota
	FareAmount
	TotalAmount
	TipAmount
)

// Domains lists every domain in report order.
var Domains = []Domain{PassengerCount, FareAmount, TotalAmount, TipAmount}

// ErrUnknownDomain is returned by ParseDomain for an unrecognised name.
var ErrUnknownDomain = errors.New("unknown domain")

type accessor struct {
	label    string
	alias    string
	field    func(*Record) string
	truncate bool
}

var accessors = map[Domain]accessor{
	PassengerCount: {
		label:    ColPassengerCount,
		alias:    "num_passengers",
		field:    func(r *Record) string { return r.PassengerCount },
		truncate: true,
	},
	FareAmount: {
		label: ColFareAmount,
		alias: "fare_amounts",
		field: func(r *Record) string { return r.FareAmount },
	},
	TotalAmount: {
		label: ColTotalAmount,
		alias: "total_amounts",
		field: func(r *Record) string { return r.TotalAmount },
	},
	TipAmount: {
		label: ColTipAmount,
		alias: "tips_amounts",
		field: func(r *Record) string { return r.TipAmount },
	},
}

// String returns the dataset column the domain reads.
func (d Domain) String() string {
	if a, ok := accessors[d]; ok {
		return a.label
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// MarshalText encodes the domain as its column label.
func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDomain accepts a column label such as "fare_amount" or its plural
// alias such as "fare_amounts".
func ParseDomain(name string) (Domain, error) {
	for _, d := range Domains {
		a := accessors[d]
		if name == a.label || name == a.alias {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// Extract returns a freshly allocated sample of the domain's values. Blank,
// malformed and NaN cells are skipped; passenger counts are truncated to whole
// numbers.
func Extract(records []Record, d Domain) []float64 {
	return parseValues(records, d, true)
}

// parseValues parses the domain's cells. Truncation applies only when both the
// caller asks for it and the domain is a whole-number count.
func parseValues(records []Record, d Domain, truncate bool) []float64 {
	a, ok := accessors[d]
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(records))
	skipped := 0
	for i := range records {
		cell := a.field(&records[i])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsNaN(v) {
			skipped++
			continue
		}
		if truncate && a.truncate {
			v = math.Trunc(v)
		}
		out = append(out, v)
	}
	if skipped > 0 {
		logger.Debug("Skipped malformed values", "domain", a.label, "count", skipped)
	}
	return out
}
