package graph

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	g := Build(Aggregate{"A": {"B": 3}, "C": {"D": 1}})
	d, err := ComputeDisplay(g, DefaultEdgeScale)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, WriteJSON(path, NewExport(g, d, Components(g))))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be gone")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Export
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Len(t, got.Nodes, 4)
	assert.Equal(t, ExportNode{Zone: "A", Volume: 3, Tier: 4}, got.Nodes[0])
	assert.Len(t, got.Edges, 2)
	assert.Equal(t, [][]Zone{{"A", "B"}, {"C", "D"}}, got.Components)
	assert.Equal(t, uint64(4), got.TotalWeight)
	assert.Len(t, got.Legend, NumTiers)
}

func TestWriteJSONBadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "graph.json"), Export{})
	assert.Error(t, err)
}
