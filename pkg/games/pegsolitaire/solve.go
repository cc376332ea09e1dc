package pegsolitaire

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-dynsolve/pkg/cache"
	"github.com/IlikeChooros/go-dynsolve/pkg/tree"
)

// Returned when a limit or cancellation stopped the search before it could
// decide whether the board is solvable
var ErrIncomplete = errors.New("search incomplete")

type Option func(*options)

type options struct {
	limits   *tree.Limits
	listener *tree.StatsListener
}

func WithLimits(limits *tree.Limits) Option {
	return func(o *options) {
		o.limits = limits
	}
}

func WithListener(listener tree.StatsListener) Option {
	return func(o *options) {
		o.listener = &listener
	}
}

type Solution struct {
	Layout string
	Start  Board
	// Moves reducing the board to a single peg, empty when not found
	Moves      []Move
	Found      bool
	Visits     uint64
	CacheSize  int
	CacheHits  uint64
	StopReason tree.StopReason
}

// Search for a sequence of jumps leaving a single peg. Losing boards are
// memoized, the search stops at the first win.
func Solve(ctx context.Context, layout *Layout, board Board, opts ...Option) (Solution, error) {
	o := options{limits: tree.DefaultLimits()}
	for _, opt := range opts {
		opt(&o)
	}

	memo := cache.NewInMemory[*Node, Board, Outcome](boardKey)
	root := NewNode(layout, board)
	e := tree.New[*Node, Outcome](root, memo, max(board.CountPegs()-1, 0)).
		SetEarlyStop(Win).
		SetLimits(o.limits).
		SetContext(ctx)
	if o.listener != nil {
		e.SetListener(*o.listener)
	}

	e.Search()

	sol := Solution{
		Layout:     layout.Name,
		Start:      board,
		Moves:      make([]Move, 0),
		Visits:     e.Visits(),
		CacheSize:  memo.Size(),
		CacheHits:  e.CacheHits(),
		StopReason: e.StopReason(),
	}

	switch {
	case e.StopReason()&tree.StopEarly != 0:
		for _, n := range e.Path() {
			m, _ := n.CurrentMove()
			sol.Moves = append(sol.Moves, m)
		}
		sol.Found = true
	case e.StopReason()&tree.StopExhausted != 0:
		value, _ := e.RootValue()
		sol.Found = value == Win
	default:
		return sol, fmt.Errorf("%w: %v after %d visits", ErrIncomplete, e.StopReason(), e.Visits())
	}
	return sol, nil
}

// Board after playing every move of the solution from its start
func (s Solution) Final() Board {
	b := s.Start
	for _, m := range s.Moves {
		b = b.Apply(m)
	}
	return b
}
