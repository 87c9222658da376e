package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-dev/parallax/pkg/pattern"
)

func TestAggregateConsensus(t *testing.T) {
	got, err := aggregate(pattern.AggregateConsensus, []any{"a", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	// Ties break toward the value seen first.
	got, err = aggregate(pattern.AggregateConsensus, []any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	// Structural equality, not identity.
	got, err = aggregate(pattern.AggregateConsensus, []any{
		map[string]any{"v": 1.0},
		map[string]any{"v": 2.0},
		map[string]any{"v": 1.0},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"v": 1.0}, got)

	got, err = aggregate(pattern.AggregateConsensus, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAggregateMajority(t *testing.T) {
	got, err := aggregate(pattern.AggregateMajority, []any{"a", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	// No value reaches half the set.
	got, err = aggregate(pattern.AggregateMajority, []any{"a", "b", "c"})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = aggregate(pattern.AggregateMajority, []any{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", got)

	// Even split: half the set rounded up is enough, first to reach it wins.
	got, err = aggregate(pattern.AggregateMajority, []any{"a", "a", "b", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = aggregate(pattern.AggregateMajority, []any{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestAggregateMerge(t *testing.T) {
	got, err := aggregate(pattern.AggregateMerge, []any{
		map[string]any{"a": 1.0, "nested": map[string]any{"x": 1.0}},
		map[string]any{"b": 2.0, "nested": map[string]any{"y": 2.0}},
		map[string]any{"a": 3.0},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a":      3.0,
		"b":      2.0,
		"nested": map[string]any{"x": 1.0, "y": 2.0},
	}, got)

	// Any non-object leaves the list unchanged.
	mixed := []any{map[string]any{"a": 1.0}, "not an object"}
	got, err = aggregate(pattern.AggregateMerge, mixed)
	require.NoError(t, err)
	assert.Equal(t, mixed, got)
}

func TestAggregateBest(t *testing.T) {
	got, err := aggregate(pattern.AggregateBest, []any{
		map[string]any{"answer": "weak", "confidence": 0.3},
		map[string]any{"answer": "strong", "confidence": 0.9},
		map[string]any{"answer": "mid", "confidence": 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "strong", got.(map[string]any)["answer"])

	// Missing confidence scores zero; ties keep the earlier result.
	got, err = aggregate(pattern.AggregateBest, []any{
		map[string]any{"answer": "first"},
		map[string]any{"answer": "second"},
	})
	require.NoError(t, err)
	assert.Equal(t, "first", got.(map[string]any)["answer"])
}

func TestAggregateUnknownMethod(t *testing.T) {
	_, err := aggregate("average", []any{"a"})
	require.Error(t, err)
}
