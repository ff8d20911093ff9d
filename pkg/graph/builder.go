package graph

import (
	"maps"
	"math"
	"slices"
	"sort"
)

type edgeKey struct {
	from, to Zone
}

// Builder accumulates zones and weighted edges before freezing them into a Graph.
type Builder struct {
	zones map[Zone]struct{}
	edges map[edgeKey]uint32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		zones: make(map[Zone]struct{}),
		edges: make(map[edgeKey]uint32),
	}
}

// AddZone adds a node if absent.
func (b *Builder) AddZone(z Zone) {
	b.zones[z] = struct{}{}
}

// SetEdge adds both endpoints and sets the weight of from -> to. A later call
// for the same pair replaces the earlier weight. Non-positive counts are
// ignored: a pair with no observed trips has no edge.
func (b *Builder) SetEdge(from, to Zone, count int) {
	if count <= 0 {
		return
	}
	if uint64(count) > math.MaxUint32 {
		count = math.MaxUint32
	}
	b.AddZone(from)
	b.AddZone(to)
	b.edges[edgeKey{from, to}] = uint32(count)
}

// Build freezes the accumulated zones and edges into a CSR Graph.
func (b *Builder) Build() *Graph {
	if len(b.zones) == 0 {
		return &Graph{FirstOut: []uint32{0}, index: map[Zone]uint32{}}
	}

	// Step 1: Assign node indices in zone order so output is reproducible.
	zones := slices.Sorted(maps.Keys(b.zones))
	g := &Graph{NumNodes: uint32(len(zones)), Zones: zones}
	g.buildIndex()

	// Step 2: Remap edges to indices and sort by source, then target.
	type compactEdge struct {
		from, to, weight uint32
	}
	compact := make([]compactEdge, 0, len(b.edges))
	for k, w := range b.edges {
		compact = append(compact, compactEdge{from: g.index[k.from], to: g.index[k.to], weight: w})
	}
	sort.Slice(compact, func(i, j int) bool {
		if compact[i].from != compact[j].from {
			return compact[i].from < compact[j].from
		}
		return compact[i].to < compact[j].to
	})

	// Step 3: Build CSR arrays.
	g.NumEdges = uint32(len(compact))
	g.FirstOut = make([]uint32, g.NumNodes+1)
	g.Head = make([]uint32, g.NumEdges)
	g.Weight = make([]uint32, g.NumEdges)
	for i, e := range compact {
		g.Head[i] = e.to
		g.Weight[i] = e.weight
		g.FirstOut[e.from+1]++
	}
	for i := uint32(1); i <= g.NumNodes; i++ {
		g.FirstOut[i] += g.FirstOut[i-1]
	}

	return g
}

// Build creates a Graph from a pickup -> dropoff -> count aggregate. Every
// pickup key becomes a node even when it has no positive counts.
func Build(agg Aggregate) *Graph {
	b := NewBuilder()
	for pickup, dropoffs := range agg {
		b.AddZone(pickup)
		for dropoff, count := range dropoffs {
			b.SetEdge(pickup, dropoff, count)
		}
	}
	return b.Build()
}
