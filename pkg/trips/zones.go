package trips

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"taxi_stats/pkg/graph"
	"taxi_stats/pkg/logger"
)

// DefaultCountZones are the pickup zones whose outgoing trips are counted by
// default, keyed by location id.
var DefaultCountZones = map[int]string{
	1:   "Newark",
	132: "JFK Airport",
	74:  "East Harlem Manhattan",
	43:  "Central Park",
}

// LoadZones parses a LocationID,Borough,Zone,service_zone lookup table into a
// map from location id to zone name.
func LoadZones(r io.Reader) (map[string]graph.Zone, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return map[string]graph.Zone{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idCol, zoneCol := 0, 2
	for i, h := range header {
		switch cleanHeader(h) {
		case "LocationID":
			idCol = i
		case "Zone":
			zoneCol = i
		}
	}

	zones := make(map[string]graph.Zone)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read zone row: %w", err)
		}
		if idCol >= len(row) || zoneCol >= len(row) {
			continue
		}
		zones[strings.TrimSpace(row[idCol])] = graph.Zone(strings.TrimSpace(row[zoneCol]))
	}
	return zones, nil
}

// LoadZoneFile opens path and parses it with LoadZones.
func LoadZoneFile(path string) (map[string]graph.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone lookup: %w", err)
	}
	defer f.Close()

	zones, err := LoadZones(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return zones, nil
}

// CountTrips counts trips leaving each zone in zones, keyed by the zone's name.
// Zones without trips are absent from the result.
func CountTrips(records []Record, zones map[int]string) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		id, ok := locationID(records[i].PickupLocation)
		if !ok {
			continue
		}
		if name, ok := zones[id]; ok {
			counts[name]++
		}
	}
	return counts
}

// locationID accepts only plain non-negative digit strings.
func locationID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(s)
	return id, err == nil
}

// Aggregate counts trips per ordered (pickup, dropoff) zone pair. Records whose
// pickup or dropoff id is missing from zones are skipped.
func Aggregate(records []Record, zones map[string]graph.Zone) graph.Aggregate {
	agg := make(graph.Aggregate)
	unresolved := 0
	for i := range records {
		pickup, ok := zones[records[i].PickupLocation]
		if !ok {
			unresolved++
			continue
		}
		dropoff, ok := zones[records[i].DropoffLocation]
		if !ok {
			unresolved++
			continue
		}
		if agg[pickup] == nil {
			agg[pickup] = make(map[graph.Zone]int)
		}
		agg[pickup][dropoff]++
	}
	if unresolved > 0 {
		logger.Debug("Skipped trips with unknown zones", "count", unresolved)
	}
	return agg
}
