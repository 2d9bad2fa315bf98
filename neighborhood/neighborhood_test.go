package neighborhood_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/neighborhood"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// diamond: A→B(1) A→C(4) B→D(1) C→D(1) D→E(2), plus an unknown A→F and a
// dangling B→ghost.
func diamond() store.VertexStore[string, struct{}] {
	m := store.Map[string, struct{}]{}
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		m.Add(id, struct{}{})
	}
	m.Link("A", "B", weight.Known(1))
	m.Link("A", "C", weight.Known(4))
	m.Link("A", "F", weight.Unknown())
	m.Link("B", "D", weight.Known(1))
	m.Link("B", "ghost", weight.Known(1))
	m.Link("C", "D", weight.Known(1))
	m.Link("D", "E", weight.Known(2))

	return m
}

func TestWithinSteps(t *testing.T) {
	s := diamond()

	got, err := neighborhood.WithinSteps(s, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, []neighborhood.Reached[string]{{ID: "A", Step: 0}}, got)

	got, err = neighborhood.WithinSteps(s, "A", 2)
	require.NoError(t, err)
	assert.Equal(t, []neighborhood.Reached[string]{
		{ID: "A", Step: 0},
		{ID: "B", Step: 1}, {ID: "C", Step: 1}, {ID: "F", Step: 1},
		{ID: "D", Step: 2},
	}, got)

	got, err = neighborhood.WithinSteps(s, "A", 10)
	require.NoError(t, err)
	assert.Len(t, got, 6, "ghost is unreachable, E is at step 3")

	_, err = neighborhood.WithinSteps(s, "A", -1)
	assert.ErrorIs(t, err, neighborhood.ErrOptionViolation)
	_, err = neighborhood.WithinSteps(s, "nope", 1)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	_, err = neighborhood.WithinSteps[string, struct{}](nil, "A", 1)
	assert.ErrorIs(t, err, neighborhood.ErrStoreNil)
}

func TestAtStep(t *testing.T) {
	s := diamond()
	got, err := neighborhood.AtStep(s, "A", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "F"}, got)

	got, err = neighborhood.AtStep(s, "A", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, got)

	got, err = neighborhood.AtStep(s, "A", 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWithinDistance(t *testing.T) {
	s := diamond()

	got, err := neighborhood.WithinDistance(s, "A", 3)
	require.NoError(t, err)
	assert.Equal(t, []neighborhood.Distance[string]{
		{ID: "A", Distance: weight.Zero()},
		{ID: "B", Distance: weight.FromFloat(1)},
		{ID: "D", Distance: weight.FromFloat(2)},
	}, got, "C at 4 and E at 4 exceed the budget, F is impassable")

	got, err = neighborhood.WithinDistance(s, "A", 4)
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, d := range got {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, ids)

	got, err = neighborhood.WithinDistance(s, "A", 0)
	require.NoError(t, err)
	assert.Equal(t, []neighborhood.Distance[string]{{ID: "A", Distance: weight.Zero()}}, got)
}

func TestWithinDistance_MissingPolicies(t *testing.T) {
	s := diamond()

	got, err := neighborhood.WithinDistance(s, "A", 1, neighborhood.WithMissingWeight(weight.Value(0.5)))
	require.NoError(t, err)
	assert.Contains(t, got, neighborhood.Distance[string]{ID: "F", Distance: weight.FromFloat(0.5)})

	// an unknown crossing exceeds every finite budget
	got, err = neighborhood.WithinDistance(s, "A", 100, neighborhood.WithMissingWeight(weight.Infinity()))
	require.NoError(t, err)
	assert.NotContains(t, got, neighborhood.Distance[string]{ID: "F", Distance: weight.Zero().Cross()})
	assert.Len(t, got, 5)

	got, err = neighborhood.WithinDistance(s, "A", math.Inf(1), neighborhood.WithMissingWeight(weight.Infinity()))
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, "F", got[5].ID)
	assert.Equal(t, weight.PathWeight{Crossings: 1}, got[5].Distance)
	assert.True(t, math.IsInf(got[5].Distance.Float(), 1))
}

// TestWithinDistance_CrossingKeepsSum reports the finite part of a distance
// that crosses an unknown edge.
func TestWithinDistance_CrossingKeepsSum(t *testing.T) {
	m := store.Map[string, struct{}]{}
	for _, id := range []string{"A", "B", "C", "D"} {
		m.Add(id, struct{}{})
	}
	m.Link("A", "B", weight.Known(2))
	m.Link("B", "C", weight.Unknown())
	m.Link("C", "D", weight.Known(3))

	got, err := neighborhood.WithinDistance[string, struct{}](m, "A", math.Inf(1), neighborhood.WithMissingWeight(weight.Infinity()))
	require.NoError(t, err)
	assert.Equal(t, []neighborhood.Distance[string]{
		{ID: "A", Distance: weight.Zero()},
		{ID: "B", Distance: weight.FromFloat(2)},
		{ID: "C", Distance: weight.PathWeight{Crossings: 1, Sum: 2}},
		{ID: "D", Distance: weight.PathWeight{Crossings: 1, Sum: 5}},
	}, got)
	assert.Equal(t, "1∞+5", got[3].Distance.String())
}

// TestWithinDistance_NonFiniteSubstitute rejects a NaN or infinite Value
// policy instead of admitting vertices past the budget.
func TestWithinDistance_NonFiniteSubstitute(t *testing.T) {
	m := store.Map[string, struct{}]{}
	for _, id := range []string{"A", "B", "C"} {
		m.Add(id, struct{}{})
	}
	m.Link("A", "B", weight.Unknown())
	m.Link("A", "C", weight.Known(1))
	m.Link("C", "B", weight.Known(1))

	for _, x := range []float64{math.NaN(), math.Inf(1)} {
		got, err := neighborhood.WithinDistance[string, struct{}](m, "A", 0.5, neighborhood.WithMissingWeight(weight.Value(x)))
		assert.ErrorIs(t, err, weight.ErrBadPolicy, "%g", x)
		assert.Nil(t, got)
	}
}

func TestWithinDistance_Errors(t *testing.T) {
	m := store.Map[int, int]{}
	m.Add(1, 0)
	m.Add(2, 0)
	m.Link(1, 2, weight.Known(-0.5))
	_, err := neighborhood.WithinDistance[int, int](m, 1, 10)
	assert.ErrorIs(t, err, weight.ErrNegativeWeight)

	_, err = neighborhood.WithinDistance[int, int](m, 1, -1)
	assert.ErrorIs(t, err, neighborhood.ErrOptionViolation)
	_, err = neighborhood.WithinDistance[int, int](m, 1, math.NaN())
	assert.ErrorIs(t, err, neighborhood.ErrOptionViolation)
	_, err = neighborhood.WithinDistance[int, int](m, 9, 1)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}
