package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/rtree"
)

// ErrTierOutOfRange is returned for a tier outside 1..NumTiers.
var ErrTierOutOfRange = errors.New("tier out of range")

// TierIndex answers volume range queries over the nodes of a graph. Nodes are
// stored as points (volume, 0) in an R-tree.
type TierIndex struct {
	tree    rtree.RTreeG[uint32]
	g       *Graph
	display *Display
}

// NewTierIndex indexes every node of g by its volume in d.
func NewTierIndex(g *Graph, d *Display) *TierIndex {
	ti := &TierIndex{g: g, display: d}
	for i, v := range d.Volumes {
		p := [2]float64{float64(v), 0}
		ti.tree.Insert(p, p, uint32(i))
	}
	return ti
}

// Len returns the number of indexed nodes.
func (ti *TierIndex) Len() int {
	return ti.tree.Len()
}

// VolumeRange returns the zones whose volume lies in [lo, hi], in zone order.
func (ti *TierIndex) VolumeRange(lo, hi float64) []Zone {
	return ti.collect(lo, hi, func(uint32) bool { return true })
}

// Tier returns the zones assigned to tier, in zone order.
func (ti *TierIndex) Tier(tier int) ([]Zone, error) {
	if tier < 1 || tier > NumTiers {
		return nil, fmt.Errorf("%w: %d", ErrTierOutOfRange, tier)
	}
	r := ti.display.Thresholds.Legend()[tier-1]
	// Legend ranges share their endpoints; the per-node tier decides which
	// side of a shared boundary a node belongs to.
	return ti.collect(r.Low, r.High, func(n uint32) bool {
		return ti.display.Tiers[n] == tier
	}), nil
}

func (ti *TierIndex) collect(lo, hi float64, keep func(uint32) bool) []Zone {
	var nodes []uint32
	ti.tree.Search([2]float64{lo, 0}, [2]float64{hi, 0},
		func(_, _ [2]float64, n uint32) bool {
			if keep(n) {
				nodes = append(nodes, n)
			}
			return true
		})
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	zones := make([]Zone, len(nodes))
	for i, n := range nodes {
		zones[i] = ti.g.Zones[n]
	}
	return zones
}
