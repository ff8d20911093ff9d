package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ExportNode is a node as handed to an external renderer.
type ExportNode struct {
	Zone   Zone   `json:"zone"`
	Volume uint64 `json:"volume"`
	Tier   int    `json:"tier"`
}

// Export is the renderer-facing view of a graph and its derived metrics.
type Export struct {
	Nodes       []ExportNode `json:"nodes"`
	Edges       []Edge       `json:"edges"`
	Legend      []TierRange  `json:"legend"`
	Components  [][]Zone     `json:"components"`
	TotalWeight uint64       `json:"total_weight"`
}

// NewExport assembles an Export from a graph, its display metrics and its
// components.
func NewExport(g *Graph, d *Display, comps [][]Zone) Export {
	nodes := make([]ExportNode, g.NumNodes)
	for i, z := range g.Zones {
		nodes[i] = ExportNode{Zone: z, Volume: d.Volumes[i], Tier: d.Tiers[i]}
	}
	return Export{
		Nodes:       nodes,
		Edges:       d.Edges,
		Legend:      d.Thresholds.Legend(),
		Components:  comps,
		TotalWeight: d.TotalWeight,
	}
}

// Encode writes e as indented JSON.
func (e Export) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteJSON writes e to path via a temporary file and an atomic rename.
func WriteJSON(path string, e Export) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath) // clean up on error
	}()

	if err := e.Encode(f); err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
