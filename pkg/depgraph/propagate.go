package depgraph

import "fmt"

// Successor enumeration, must be a pure function of the state.
// An empty result marks a terminal state.
type ExpandFunc[S comparable] func(S) []S

// Computes the value of a state from the already resolved values of its
// dependencies, returns false if some dependency isn't resolved yet
type ValueFunc[S comparable, V any] func(state S, g Reader[S, V]) (V, bool)

// Build the graph of every state reachable from the seeds.
//
// Newly discovered states are explored before the remaining seeds (depth first-ish),
// the order only affects discovery, not the resulting graph. Every state is expanded
// exactly once, each dependency edge gets its reverse dependent edge.
func Generate[S comparable, V any](expand ExpandFunc[S], seeds []S, opts ...Option) *Graph[S, V] {
	g := New[S, V](opts...)

	pending := make([]S, 0, len(seeds))
	for _, s := range seeds {
		if !g.Contains(s) {
			g.Insert(s)
			pending = append(pending, s)
		}
	}

	// Discovered states go on top of the stack, the seeds are consumed after it's empty
	stack := make([]S, 0, 64)
	next := 0

	for len(stack) > 0 || next < len(pending) {
		var working S
		if n := len(stack); n > 0 {
			working = stack[n-1]
			stack = stack[:n-1]
		} else {
			working = pending[next]
			next++
		}

		node := g.states[working]
		for _, successor := range expand(working) {
			node.valueDependencies = append(node.valueDependencies, successor)

			if !g.Contains(successor) {
				g.Insert(successor)
				stack = append(stack, successor)
			}

			succNode := g.states[successor]
			succNode.dependents = append(succNode.dependents, working)
		}
	}

	g.logger.Debug("dependency graph generated", "states", g.CountStates(), "seeds", len(seeds))
	return g
}

// Resolve the values of all states, starting from the terminal ones and moving
// towards their dependents. A state whose value function reports a missing
// dependency is queued again.
//
// The dependency relation must be acyclic. If propagation stops making progress
// (every queued state failed once since the last resolved one), or some states
// are never reached, ErrUnresolvable is returned and the graph keeps the values
// resolved so far.
func (g *Graph[S, V]) ComputeValues(valueOf ValueFunc[S, V]) error {
	queue := g.TerminalStates()
	head := 0
	sinceProgress := 0

	for head < len(queue) {
		working := queue[head]
		head++

		node := g.states[working]
		if node.resolved {
			continue
		}

		g.stats.Evaluations++
		value, ok := valueOf(working, g)
		if !ok {
			g.stats.Retries++
			queue = append(queue, working)
			sinceProgress++

			if sinceProgress > len(queue)-head {
				unresolved := g.countUnresolved()
				g.logger.Warn("value propagation stalled", "unresolved", unresolved)
				return fmt.Errorf("%w: %d states stalled", ErrUnresolvable, unresolved)
			}
			continue
		}

		sinceProgress = 0
		node.value = value
		node.resolved = true

		for _, d := range node.dependents {
			if !g.states[d].resolved {
				queue = append(queue, d)
			}
		}

		// Compact the consumed prefix once in a while
		if head > 1024 && head > len(queue)/2 {
			queue = append(queue[:0], queue[head:]...)
			head = 0
		}
	}

	if unresolved := g.countUnresolved(); unresolved > 0 {
		return fmt.Errorf("%w: %d states never reached", ErrUnresolvable, unresolved)
	}

	g.logger.Debug("values computed", "states", g.CountStates(),
		"evaluations", g.stats.Evaluations, "retries", g.stats.Retries)
	return nil
}

func (g *Graph[S, V]) countUnresolved() int {
	n := 0
	for _, node := range g.states {
		if !node.resolved {
			n++
		}
	}
	return n
}
