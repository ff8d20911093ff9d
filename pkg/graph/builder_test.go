package graph

import "testing"

func TestBuildSimpleGraph(t *testing.T) {
	g := Build(Aggregate{
		"A": {"B": 3},
		"B": {"C": 2},
	})

	if g.NumNodes != 3 {
		t.Fatalf("NumNodes = %d, want 3", g.NumNodes)
	}
	if g.NumEdges != 2 {
		t.Fatalf("NumEdges = %d, want 2", g.NumEdges)
	}

	wantZones := []Zone{"A", "B", "C"}
	for i, z := range wantZones {
		if g.Zones[i] != z {
			t.Errorf("Zones[%d] = %q, want %q", i, g.Zones[i], z)
		}
	}

	if w, ok := g.EdgeWeight("A", "B"); !ok || w != 3 {
		t.Errorf("EdgeWeight(A, B) = %d, %v; want 3, true", w, ok)
	}
	if w, ok := g.EdgeWeight("B", "C"); !ok || w != 2 {
		t.Errorf("EdgeWeight(B, C) = %d, %v; want 2, true", w, ok)
	}
	if _, ok := g.EdgeWeight("B", "A"); ok {
		t.Error("B -> A should not exist")
	}
	if g.TotalWeight() != 5 {
		t.Errorf("TotalWeight = %d, want 5", g.TotalWeight())
	}
}

func TestBuildEmptyGraph(t *testing.T) {
	g := Build(nil)

	if g.NumNodes != 0 {
		t.Errorf("NumNodes = %d, want 0", g.NumNodes)
	}
	if g.NumEdges != 0 {
		t.Errorf("NumEdges = %d, want 0", g.NumEdges)
	}
	if len(g.Edges()) != 0 {
		t.Errorf("Edges = %v, want none", g.Edges())
	}
}

func TestBuildPickupWithoutTrips(t *testing.T) {
	// A pickup key is a node even when every count under it is dropped.
	g := Build(Aggregate{
		"Newark": {},
		"JFK":    {"Midtown": 0},
	})

	if g.NumNodes != 2 {
		t.Fatalf("NumNodes = %d, want 2", g.NumNodes)
	}
	if g.NumEdges != 0 {
		t.Fatalf("NumEdges = %d, want 0", g.NumEdges)
	}
	if _, ok := g.NodeIndex("Midtown"); ok {
		t.Error("Midtown has no observed trips and should not be a node")
	}
}

func TestBuildBidirectionalEdges(t *testing.T) {
	// Opposite directions keep independent weights.
	g := Build(Aggregate{
		"A": {"B": 4},
		"B": {"A": 1},
	})

	if g.NumNodes != 2 {
		t.Fatalf("NumNodes = %d, want 2", g.NumNodes)
	}
	if g.NumEdges != 2 {
		t.Fatalf("NumEdges = %d, want 2", g.NumEdges)
	}

	for i := uint32(0); i < g.NumNodes; i++ {
		start, end := g.EdgesFrom(i)
		if end-start != 1 {
			t.Errorf("Node %d has %d edges, want 1", i, end-start)
		}
	}
	if w, _ := g.EdgeWeight("A", "B"); w != 4 {
		t.Errorf("A -> B weight = %d, want 4", w)
	}
	if w, _ := g.EdgeWeight("B", "A"); w != 1 {
		t.Errorf("B -> A weight = %d, want 1", w)
	}
}

func TestBuilderLastWriteWins(t *testing.T) {
	b := NewBuilder()
	b.SetEdge("A", "B", 3)
	b.SetEdge("A", "B", 7)
	g := b.Build()

	if g.NumEdges != 1 {
		t.Fatalf("NumEdges = %d, want 1", g.NumEdges)
	}
	if w, _ := g.EdgeWeight("A", "B"); w != 7 {
		t.Errorf("A -> B weight = %d, want 7", w)
	}
}

func TestBuildCSRInvariants(t *testing.T) {
	// Star graph: center -> A, center -> B, center -> C, A -> center
	g := Build(Aggregate{
		"center": {"A": 1, "B": 2, "C": 3},
		"A":      {"center": 1},
	})

	if g.NumNodes != 4 {
		t.Fatalf("NumNodes = %d, want 4", g.NumNodes)
	}
	if g.NumEdges != 4 {
		t.Fatalf("NumEdges = %d, want 4", g.NumEdges)
	}

	// CSR invariant: FirstOut is monotonically non-decreasing.
	for i := uint32(1); i <= g.NumNodes; i++ {
		if g.FirstOut[i] < g.FirstOut[i-1] {
			t.Errorf("FirstOut[%d]=%d < FirstOut[%d]=%d, not monotonic", i, g.FirstOut[i], i-1, g.FirstOut[i-1])
		}
	}

	// CSR invariant: FirstOut[NumNodes] == NumEdges.
	if g.FirstOut[g.NumNodes] != g.NumEdges {
		t.Errorf("FirstOut[%d]=%d != NumEdges=%d", g.NumNodes, g.FirstOut[g.NumNodes], g.NumEdges)
	}

	// All Head values < NumNodes, all weights >= 1.
	for i, h := range g.Head {
		if h >= g.NumNodes {
			t.Errorf("Head[%d]=%d >= NumNodes=%d", i, h, g.NumNodes)
		}
		if g.Weight[i] < 1 {
			t.Errorf("Weight[%d]=%d, want >= 1", i, g.Weight[i])
		}
	}

	// Edges within a row are sorted by target.
	for u := uint32(0); u < g.NumNodes; u++ {
		start, end := g.EdgesFrom(u)
		for e := start + 1; e < end; e++ {
			if g.Head[e-1] >= g.Head[e] {
				t.Errorf("row %d not sorted at edge %d", u, e)
			}
		}
	}
}
