package graph

import (
	"errors"
	"math"
)

// DefaultEdgeScale sets the width of an edge carrying every trip.
const DefaultEdgeScale = 500.0

// NumTiers is the number of volume tiers nodes are split into.
const NumTiers = 4

// ErrEmptyGraph is returned when a metric needs at least one node.
var ErrEmptyGraph = errors.New("graph has no nodes")

// Edge is a directed edge with its display width.
type Edge struct {
	From   Zone    `json:"from"`
	To     Zone    `json:"to"`
	Weight uint32  `json:"weight"`
	Width  float64 `json:"width"`
}

// EdgeWidths returns every edge with Width = weight * scale / total weight.
func EdgeWidths(g *Graph, scale float64) []Edge {
	edges := g.Edges()
	total := g.TotalWeight()
	if total == 0 {
		return edges
	}
	for i := range edges {
		edges[i].Width = float64(edges[i].Weight) * scale / float64(total)
	}
	return edges
}

// NodeVolumes returns, per node index, the sum of weights of every edge that
// starts or ends at the node. A self-loop counts once in each direction.
func NodeVolumes(g *Graph) []uint64 {
	vol := make([]uint64, g.NumNodes)
	for u := uint32(0); u < g.NumNodes; u++ {
		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			w := uint64(g.Weight[e])
			vol[u] += w
			vol[g.Head[e]] += w
		}
	}
	return vol
}

// Thresholds splits the [Min, Max] volume range linearly at 25%, 50% and 75%.
type Thresholds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Q1  float64 `json:"q1"`
	Q2  float64 `json:"q2"`
	Q3  float64 `json:"q3"`
}

// ComputeThresholds derives tier thresholds from observed node volumes. These
// are points on the min-max range, not percentiles of the distribution, and
// they are left unrounded rather than snapped to whole trip counts.
func ComputeThresholds(volumes []uint64) (Thresholds, error) {
	if len(volumes) == 0 {
		return Thresholds{}, ErrEmptyGraph
	}
	lo, hi := uint64(math.MaxUint64), uint64(0)
	for _, v := range volumes {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	minV, span := float64(lo), float64(hi-lo)
	return Thresholds{
		Min: minV,
		Max: float64(hi),
		Q1:  minV + span*0.25,
		Q2:  minV + span*0.5,
		Q3:  minV + span*0.75,
	}, nil
}

// Tier returns 1..4 for a volume. Each upper bound is inclusive.
func (t Thresholds) Tier(volume float64) int {
	switch {
	case volume <= t.Q1:
		return 1
	case volume <= t.Q2:
		return 2
	case volume <= t.Q3:
		return 3
	default:
		return 4
	}
}

// TierRange is one legend entry.
type TierRange struct {
	Tier int     `json:"tier"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Legend returns the volume range of each tier.
func (t Thresholds) Legend() []TierRange {
	return []TierRange{
		{Tier: 1, Low: t.Min, High: t.Q1},
		{Tier: 2, Low: t.Q1, High: t.Q2},
		{Tier: 3, Low: t.Q2, High: t.Q3},
		{Tier: 4, Low: t.Q3, High: t.Max},
	}
}

// Display bundles the derived metrics a renderer needs. It is computed once
// after construction and is not part of the graph.
type Display struct {
	Edges       []Edge
	Volumes     []uint64
	Tiers       []int
	Thresholds  Thresholds
	TotalWeight uint64
}

// ComputeDisplay derives edge widths, node volumes and tiers for g.
func ComputeDisplay(g *Graph, scale float64) (*Display, error) {
	volumes := NodeVolumes(g)
	th, err := ComputeThresholds(volumes)
	if err != nil {
		return nil, err
	}
	tiers := make([]int, len(volumes))
	for i, v := range volumes {
		tiers[i] = th.Tier(float64(v))
	}
	return &Display{
		Edges:       EdgeWidths(g, scale),
		Volumes:     volumes,
		Tiers:       tiers,
		Thresholds:  th,
		TotalWeight: g.TotalWeight(),
	}, nil
}
