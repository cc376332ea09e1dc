package depgraph

import (
	"log/slog"

	"github.com/IlikeChooros/go-dynsolve/internal/logging"
)

// Read-only view of the graph, handed to value functions during propagation
type Reader[S comparable, V any] interface {
	Contains(state S) bool
	CountStates() int
	ValueDependencies(state S) ([]S, bool)
	Dependents(state S) ([]S, bool)
	TerminalStates() []S
	Value(state S) (V, bool)
}

// Per state bookkeeping: what this state's value depends on,
// who depends on it, and the value once resolved
type stateNode[S comparable, V any] struct {
	valueDependencies []S
	dependents        []S
	value             V
	resolved          bool
}

// In-memory dependency graph of states. A state is terminal if it has no
// value dependencies. Nodes are never removed, values are set once.
//
// Not safe for concurrent use, build one graph per evaluation.
type Graph[S comparable, V any] struct {
	states map[S]*stateNode[S, V]
	// insertion order, so iteration over the graph is deterministic
	order  []S
	stats  Stats
	logger *slog.Logger
}

// Counters collected while building and resolving the graph
type Stats struct {
	States      int
	Terminals   int
	Evaluations int
	Retries     int
}

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// Attach a logger, by default the graph doesn't log anything
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New[S comparable, V any](opts ...Option) *Graph[S, V] {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[S, V]{
		states: make(map[S]*stateNode[S, V]),
		logger: o.logger,
	}
}

// Add the state to the graph, does nothing if it's already there
func (g *Graph[S, V]) Insert(state S) {
	if _, ok := g.states[state]; ok {
		return
	}
	g.states[state] = &stateNode[S, V]{}
	g.order = append(g.order, state)
}

func (g *Graph[S, V]) Contains(state S) bool {
	_, ok := g.states[state]
	return ok
}

func (g *Graph[S, V]) CountStates() int {
	return len(g.states)
}

// Record that the value of 'state' requires the value of 'dependency'.
// Callers are responsible for the reverse edge, see AddDependent.
func (g *Graph[S, V]) AddValueDependency(state S, dependency S) error {
	node, ok := g.states[state]
	if !ok {
		return unknownState(state)
	}
	node.valueDependencies = append(node.valueDependencies, dependency)
	return nil
}

func (g *Graph[S, V]) ValueDependencies(state S) ([]S, bool) {
	node, ok := g.states[state]
	if !ok {
		return nil, false
	}
	return node.valueDependencies, true
}

// Record that 'dependent' needs the value of 'state'
func (g *Graph[S, V]) AddDependent(state S, dependent S) error {
	node, ok := g.states[state]
	if !ok {
		return unknownState(state)
	}
	node.dependents = append(node.dependents, dependent)
	return nil
}

func (g *Graph[S, V]) Dependents(state S) ([]S, bool) {
	node, ok := g.states[state]
	if !ok {
		return nil, false
	}
	return node.dependents, true
}

// States without value dependencies, in insertion order
func (g *Graph[S, V]) TerminalStates() []S {
	terminals := make([]S, 0)
	for _, s := range g.order {
		if len(g.states[s].valueDependencies) == 0 {
			terminals = append(terminals, s)
		}
	}
	return terminals
}

// Set the value of the state. The first value wins, setting an already
// resolved state keeps the old value.
func (g *Graph[S, V]) SetValue(state S, value V) error {
	node, ok := g.states[state]
	if !ok {
		return unknownState(state)
	}
	if node.resolved {
		return nil
	}
	node.value = value
	node.resolved = true
	return nil
}

// Resolved value of the state, false if the state is unknown or not resolved yet
func (g *Graph[S, V]) Value(state S) (V, bool) {
	node, ok := g.states[state]
	if !ok || !node.resolved {
		var zero V
		return zero, false
	}
	return node.value, true
}

// All states, in insertion order
func (g *Graph[S, V]) States() []S {
	out := make([]S, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Graph[S, V]) Stats() Stats {
	stats := g.stats
	stats.States = len(g.states)
	stats.Terminals = len(g.TerminalStates())
	return stats
}
