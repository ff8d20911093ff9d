package graph

import "sort"

// UnionFind implements a disjoint-set data structure with path compression
// and union by rank.
type UnionFind struct {
	parent []uint32
	rank   []byte
	size   []uint32
}

// NewUnionFind creates a UnionFind for n elements.
func NewUnionFind(n uint32) *UnionFind {
	parent := make([]uint32, n)
	size := make([]uint32, n)
	for i := range n {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]byte, n),
		size:   size,
	}
}

// Find returns the representative of the set containing x, with path halving.
func (uf *UnionFind) Find(x uint32) uint32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. Returns false if already same set.
func (uf *UnionFind) Union(x, y uint32) bool {
	rx := uf.Find(x)
	ry := uf.Find(y)
	if rx == ry {
		return false
	}

	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x uint32) uint32 {
	return uf.size[uf.Find(x)]
}

// connect unions the endpoints of every edge. Edge direction is ignored, so
// a -> b and b -> a link the same pair.
func connect(g *Graph) *UnionFind {
	uf := NewUnionFind(g.NumNodes)
	for u := uint32(0); u < g.NumNodes; u++ {
		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			uf.Union(u, g.Head[e])
		}
	}
	return uf
}

// ComponentIndices partitions node indices into weakly connected components.
// Indices within a component ascend; components are ordered largest first,
// ties broken by their smallest index.
func ComponentIndices(g *Graph) [][]uint32 {
	if g.NumNodes == 0 {
		return nil
	}

	uf := connect(g)
	slot := make(map[uint32]int)
	var comps [][]uint32
	for i := uint32(0); i < g.NumNodes; i++ {
		root := uf.Find(i)
		s, ok := slot[root]
		if !ok {
			s = len(comps)
			slot[root] = s
			comps = append(comps, make([]uint32, 0, uf.size[root]))
		}
		comps[s] = append(comps[s], i)
	}

	// Components were discovered in order of their smallest index, so a stable
	// sort on size keeps that as the tie-breaker.
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})
	return comps
}

// Components returns the zones of each weakly connected component, in the
// order of ComponentIndices. Every zone appears in exactly one component.
func Components(g *Graph) [][]Zone {
	idx := ComponentIndices(g)
	comps := make([][]Zone, len(idx))
	for i, nodes := range idx {
		zones := make([]Zone, len(nodes))
		for j, n := range nodes {
			zones[j] = g.Zones[n]
		}
		comps[i] = zones
	}
	return comps
}

// LargestComponent returns the node indices belonging to the largest
// weakly connected component (treating the directed graph as undirected).
func LargestComponent(g *Graph) []uint32 {
	comps := ComponentIndices(g)
	if len(comps) == 0 {
		return nil
	}
	return comps[0]
}

// Subgraph creates a new graph containing only the specified nodes and the
// edges running between them.
func Subgraph(g *Graph, nodes []uint32) *Graph {
	b := NewBuilder()
	keep := make(map[uint32]bool, len(nodes))
	for _, n := range nodes {
		keep[n] = true
		b.AddZone(g.Zones[n])
	}
	for _, u := range nodes {
		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			if v := g.Head[e]; keep[v] {
				b.SetEdge(g.Zones[u], g.Zones[v], int(g.Weight[e]))
			}
		}
	}
	return b.Build()
}
