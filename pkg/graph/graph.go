package graph

// Zone identifies a taxi pickup/dropoff area.
type Zone string

// Aggregate maps pickup zone -> dropoff zone -> trip count.
type Aggregate map[Zone]map[Zone]int

// Graph is a directed trip-flow graph in CSR (Compressed Sparse Row) format.
// Node i is Zones[i]; zones are stored in ascending order.
type Graph struct {
	NumNodes uint32
	NumEdges uint32
	Zones    []Zone   // len: NumNodes
	FirstOut []uint32 // len: NumNodes + 1; FirstOut[i]..FirstOut[i+1] are edges from node i
	Head     []uint32 // len: NumEdges; target node for each edge
	Weight   []uint32 // len: NumEdges; trip count, always >= 1

	index map[Zone]uint32
}

// EdgesFrom returns the range of edge indices for edges originating from node u.
func (g *Graph) EdgesFrom(u uint32) (start, end uint32) {
	return g.FirstOut[u], g.FirstOut[u+1]
}

// NodeIndex returns the node index of zone z.
func (g *Graph) NodeIndex(z Zone) (uint32, bool) {
	idx, ok := g.index[z]
	return idx, ok
}

// EdgeWeight returns the trip count on the directed edge from -> to.
func (g *Graph) EdgeWeight(from, to Zone) (uint32, bool) {
	u, ok := g.index[from]
	if !ok {
		return 0, false
	}
	v, ok := g.index[to]
	if !ok {
		return 0, false
	}
	start, end := g.EdgesFrom(u)
	for e := start; e < end; e++ {
		if g.Head[e] == v {
			return g.Weight[e], true
		}
	}
	return 0, false
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() uint64 {
	var total uint64
	for _, w := range g.Weight {
		total += uint64(w)
	}
	return total
}

// Edges lists every directed edge in CSR order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.NumEdges)
	for u := uint32(0); u < g.NumNodes; u++ {
		start, end := g.EdgesFrom(u)
		for e := start; e < end; e++ {
			edges = append(edges, Edge{
				From:   g.Zones[u],
				To:     g.Zones[g.Head[e]],
				Weight: g.Weight[e],
			})
		}
	}
	return edges
}

func (g *Graph) buildIndex() {
	g.index = make(map[Zone]uint32, len(g.Zones))
	for i, z := range g.Zones {
		g.index[z] = uint32(i)
	}
}
