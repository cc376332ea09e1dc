package pegsolitaire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-dynsolve/pkg/tree"
)

func TestLayouts(t *testing.T) {
	assert.Equal(t, 33, English().Holes())
	assert.Equal(t, 16, English().DefaultHole())
	assert.Equal(t, 15, Triangle().Holes())

	l, err := LayoutByName("Triangle")
	require.NoError(t, err)
	assert.Same(t, Triangle(), l)

	_, err = LayoutByName("hexagon")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestEnglishStart(t *testing.T) {
	b := English().Start(16)
	assert.Equal(t, 32, b.CountPegs())
	assert.False(t, b.Has(16))

	want := []Move{
		{From: 4, Over: 9, To: 16},
		{From: 14, Over: 15, To: 16},
		{From: 18, Over: 17, To: 16},
		{From: 28, Over: 23, To: 16},
	}
	assert.Equal(t, want, English().LegalMoves(b))
}

func TestTriangleStart(t *testing.T) {
	b := Triangle().Start(12)
	assert.Equal(t, 14, b.CountPegs())
	assert.Equal(t, []Move{
		{From: 3, Over: 7, To: 12},
		{From: 5, Over: 8, To: 12},
		{From: 10, Over: 11, To: 12},
		{From: 14, Over: 13, To: 12},
	}, Triangle().LegalMoves(b))
}

func TestApply(t *testing.T) {
	b := Triangle().Start(0)
	after := b.Apply(Move{From: 3, Over: 1, To: 0})

	assert.True(t, after.Has(0))
	assert.False(t, after.Has(1))
	assert.False(t, after.Has(3))
	assert.Equal(t, b.CountPegs()-1, after.CountPegs())
}

func TestApplyIllegalMovePanics(t *testing.T) {
	b := Triangle().Start(0)

	// destination occupied
	assert.Panics(t, func() { b.Apply(Move{From: 3, Over: 4, To: 5}) })
	// source empty
	assert.Panics(t, func() { b.Apply(Move{From: 0, Over: 1, To: 3}) })
	assert.Panics(t, func() { b.Has(64) })
	assert.Panics(t, func() { Triangle().Start(15) })
}

func TestSolveTriangle(t *testing.T) {
	sol, err := Solve(context.Background(), Triangle(), Triangle().Start(12))
	require.NoError(t, err)
	require.True(t, sol.Found)

	want := []Move{
		{3, 7, 12}, {0, 1, 3}, {2, 4, 7}, {6, 3, 1}, {9, 5, 2}, {11, 7, 4}, {12, 8, 5},
		{1, 4, 8}, {2, 5, 9}, {14, 9, 5}, {5, 8, 12}, {13, 12, 11}, {10, 11, 12},
	}
	assert.Equal(t, want, sol.Moves)
	assert.Equal(t, 1, sol.Final().CountPegs())
	assert.Equal(t, tree.StopEarly, sol.StopReason)
}

func TestSolveEveryTriangleHole(t *testing.T) {
	for hole := range Triangle().Holes() {
		sol, err := Solve(context.Background(), Triangle(), Triangle().Start(hole))
		require.NoError(t, err)
		assert.True(t, sol.Found, "hole %d", hole)
		assert.Len(t, sol.Moves, 13, "hole %d", hole)
		assert.Equal(t, 1, sol.Final().CountPegs(), "hole %d", hole)
	}
}

func TestSolveEnglish(t *testing.T) {
	sol, err := Solve(context.Background(), English(), English().Start(16))
	require.NoError(t, err)
	require.True(t, sol.Found)

	assert.Len(t, sol.Moves, 31)
	assert.Equal(t, Move{From: 4, Over: 9, To: 16}, sol.Moves[0])
	assert.Equal(t, 1, sol.Final().CountPegs())
	assert.Positive(t, sol.CacheSize)
}

func TestSolveUnsolvable(t *testing.T) {
	// Two pegs that can't reach each other
	b := Board(0).with(0).with(14)
	sol, err := Solve(context.Background(), Triangle(), b)
	require.NoError(t, err)
	assert.False(t, sol.Found)
	assert.Empty(t, sol.Moves)
	assert.Equal(t, tree.StopExhausted, sol.StopReason)
}

func TestSolveSinglePeg(t *testing.T) {
	sol, err := Solve(context.Background(), Triangle(), Board(0).with(4))
	require.NoError(t, err)
	assert.True(t, sol.Found)
	assert.Empty(t, sol.Moves)
}

func TestSolveLimited(t *testing.T) {
	_, err := Solve(context.Background(), English(), English().Start(16),
		WithLimits(tree.DefaultLimits().SetVisits(10)))
	assert.ErrorIs(t, err, ErrIncomplete)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Solve(ctx, English(), English().Start(16))
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestRender(t *testing.T) {
	want := "    o\n" +
		"   o o\n" +
		"  o o o\n" +
		" o o o o\n" +
		"o o . o o\n"
	assert.Equal(t, want, Triangle().Render(Triangle().Start(12)))
}
