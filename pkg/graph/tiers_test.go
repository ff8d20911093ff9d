package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoopIndex(t *testing.T) *TierIndex {
	t.Helper()
	g := loopGraph()
	d, err := ComputeDisplay(g, DefaultEdgeScale)
	require.NoError(t, err)
	return NewTierIndex(g, d)
}

func TestTierIndexTiers(t *testing.T) {
	ti := newLoopIndex(t)
	require.Equal(t, 4, ti.Len())

	for tier, want := range map[int][]Zone{1: {"A"}, 2: {"B"}, 3: {"C"}, 4: {"D"}} {
		got, err := ti.Tier(tier)
		require.NoError(t, err)
		assert.Equal(t, want, got, "tier %d", tier)
	}
}

func TestTierIndexSharedBoundary(t *testing.T) {
	// Volumes 0 (isolated), 50 and 100: 50 sits exactly on Q2.
	g := Build(Aggregate{
		"lonely": {},
		"mid":    {"mid": 25},
		"top":    {"top": 50},
	})
	d, err := ComputeDisplay(g, DefaultEdgeScale)
	require.NoError(t, err)
	ti := NewTierIndex(g, d)

	two, err := ti.Tier(2)
	require.NoError(t, err)
	three, err := ti.Tier(3)
	require.NoError(t, err)

	assert.Equal(t, []Zone{"mid"}, two)
	assert.Empty(t, three)
}

func TestTierIndexVolumeRange(t *testing.T) {
	ti := newLoopIndex(t)

	assert.Equal(t, []Zone{"B", "C"}, ti.VolumeRange(15, 35))
	assert.Equal(t, []Zone{"A", "B", "C", "D"}, ti.VolumeRange(10, 40))
	assert.Empty(t, ti.VolumeRange(41, 100))
}

func TestTierIndexOutOfRange(t *testing.T) {
	ti := newLoopIndex(t)

	for _, tier := range []int{0, 5, -1} {
		_, err := ti.Tier(tier)
		assert.ErrorIs(t, err, ErrTierOutOfRange)
	}
}
