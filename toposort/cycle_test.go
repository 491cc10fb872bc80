package toposort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/depsort/toposort"
)

// TestDetectCycle_NilDependencyFunc verifies a nil deps is treated as
// cycle-free.
func TestDetectCycle_NilDependencyFunc(t *testing.T) {
	path, found := toposort.DetectCycle[string]([]string{"A"}, nil)
	assert.False(t, found)
	assert.Nil(t, path)
}

// TestDetectCycle_Acyclic ensures no cycle is reported for a simple DAG.
func TestDetectCycle_Acyclic(t *testing.T) {
	deps := depsOf(map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
	})
	path, found := toposort.DetectCycle([]string{"A"}, deps)
	assert.False(t, found)
	assert.Nil(t, path)
}

// TestDetectCycle_TwoNode covers the minimal non-trivial loop A→B→A.
func TestDetectCycle_TwoNode(t *testing.T) {
	deps := depsOf(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})
	path, found := toposort.DetectCycle([]string{"A"}, deps)
	assert.True(t, found)
	assert.Equal(t, []string{"A", "B", "A"}, path)
}

// TestDetectCycle_SelfLoop covers an item depending on itself.
func TestDetectCycle_SelfLoop(t *testing.T) {
	deps := depsOf(map[string][]string{
		"A": {"A"},
	})
	path, found := toposort.DetectCycle([]string{"A"}, deps)
	assert.True(t, found)
	assert.Equal(t, []string{"A", "A"}, path)
}

// TestDetectCycle_BeyondRoot verifies the reported path covers only the
// loop, not the acyclic prefix leading to it: A→B→C→B yields [B, C, B].
func TestDetectCycle_BeyondRoot(t *testing.T) {
	deps := depsOf(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"B"},
	})
	path, found := toposort.DetectCycle([]string{"A"}, deps)
	assert.True(t, found)
	assert.Equal(t, []string{"B", "C", "B"}, path)
}

// TestDetectCycle_SecondComponent ensures a cycle in a later root's
// component is still found after an acyclic first component.
func TestDetectCycle_SecondComponent(t *testing.T) {
	deps := depsOf(map[string][]string{
		"X": {"Y"},
		"A": {"B"},
		"B": {"A"},
	})
	path, found := toposort.DetectCycle([]string{"X", "A"}, deps)
	assert.True(t, found)
	assert.Equal(t, []string{"A", "B", "A"}, path)
}

// TestDetectCycle_MatchesSort checks agreement with Sort: DetectCycle
// reports the same loop Sort fails on.
func TestDetectCycle_MatchesSort(t *testing.T) {
	deps := depsOf(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"A"},
	})
	_, err := toposort.Sort([]string{"A"}, deps)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)

	path, found := toposort.DetectCycle([]string{"A"}, deps)
	assert.True(t, found)
	assert.Equal(t, []string{"A", "B", "C", "A"}, path)
}
