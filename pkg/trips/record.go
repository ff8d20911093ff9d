package trips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names in the trip dataset header.
const (
	ColPickupTime      = "tpep_pickup_datetime"
	ColDropoffTime     = "tpep_dropoff_datetime"
	ColPassengerCount  = "passenger_count"
	ColTripDistance    = "trip_distance"
	ColPickupLocation  = "PULocationID"
	ColDropoffLocation = "DOLocationID"
	ColFareAmount      = "fare_amount"
	ColTipAmount       = "tip_amount"
	ColTotalAmount     = "total_amount"
)

// ErrMissingColumn is returned when the header has none of the columns this
// package reads.
var ErrMissingColumn = errors.New("dataset header has no known columns")

// Record is one trip row. Fields hold the raw cell text; a column absent from
// the header leaves its field empty.
type Record struct {
	PickupTime      string
	DropoffTime     string
	PassengerCount  string
	TripDistance    string
	PickupLocation  string
	DropoffLocation string
	FareAmount      string
	TipAmount       string
	TotalAmount     string
}

func (r *Record) fieldFor(column string) *string {
	switch column {
	case ColPickupTime:
		return &r.PickupTime
	case ColDropoffTime:
		return &r.DropoffTime
	case ColPassengerCount:
		return &r.PassengerCount
	case ColTripDistance:
		return &r.TripDistance
	case ColPickupLocation:
		return &r.PickupLocation
	case ColDropoffLocation:
		return &r.DropoffLocation
	case ColFareAmount:
		return &r.FareAmount
	case ColTipAmount:
		return &r.TipAmount
	case ColTotalAmount:
		return &r.TotalAmount
	}
	return nil
}

// ReadRecords parses header-led CSV trip data. An empty input yields no
// records and no error.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// columns[i] is the header name of cell i, or "" when unused.
	columns := make([]string, len(header))
	known := 0
	var probe Record
	for i, h := range header {
		h = cleanHeader(h)
		if probe.fieldFor(h) != nil {
			columns[i] = h
			known++
		}
	}
	if known == 0 {
		return nil, ErrMissingColumn
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}
		var rec Record
		for i, cell := range row {
			if i < len(columns) && columns[i] != "" {
				*rec.fieldFor(columns[i]) = strings.TrimSpace(cell)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile opens path and parses it with ReadRecords.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// cleanHeader strips surrounding space and a UTF-8 byte order mark.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}
