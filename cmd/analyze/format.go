package main

import (
	"maps"
	"slices"
	"strings"

	"taxi_stats/pkg/graph"
)

func sortedKeys(m map[string]int) []string {
	return slices.Sorted(maps.Keys(m))
}

func joinZones(zones []graph.Zone) string {
	parts := make([]string, len(zones))
	for i, z := range zones {
		parts[i] = string(z)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
