package tree

import (
	"context"
	"fmt"
	"io"

	"github.com/IlikeChooros/go-dynsolve/pkg/cache"
)

// Decision node contract of the evaluator. Implementations are usually
// pointers, the evaluator mutates nodes in place through these methods.
type NodeLike[N any, V comparable] interface {
	// Next unexplored child, in a fixed order. Must not return the same
	// child twice: it's called again only after the previous child was
	// folded back through OnChildPruned.
	RequestNextChild() (N, bool)
	// Fold a finished child and its value into this node
	OnChildPruned(child N, value V)
	// Called once every child was pruned (or the depth bound was hit),
	// returns this node's own value
	OnAllChildrenPruned() V
}

// Depth-first evaluator over a path of decision nodes, with memoization of
// pruned nodes and optional early stopping.
//
// The root stays at the bottom of the path, the search is finished once
// the root runs out of children or a pruned node's value equals the early
// stopping value. Not safe for concurrent use, apart from Stop().
type Evaluator[N NodeLike[N, V], V comparable] struct {
	path     []N
	cache    cache.ValueCache[N, V]
	maxDepth int

	earlyStop    V
	hasEarlyStop bool

	limiter  LimiterLike
	listener StatsListener

	finished     bool
	reason       StopReason
	visits       uint64
	deepest      int
	cacheHits    uint64
	rootValue    V
	rootResolved bool
}

// Create a new evaluator, maxDepth is the number of edges below the root that
// may be expanded. Passing a nil cache disables memoization.
func New[N NodeLike[N, V], V comparable](root N, c cache.ValueCache[N, V], maxDepth int) *Evaluator[N, V] {
	if c == nil {
		c = cache.NoOp[N, V]{}
	}

	return &Evaluator[N, V]{
		path:     []N{root},
		cache:    c,
		maxDepth: max(maxDepth, 0),
		limiter:  NewLimiter(),
		listener: NewStatsListener(),
	}
}

// Stop the search as soon as a pruned node evaluates to this value.
// The matching node is not cached and not folded into its parent.
func (e *Evaluator[N, V]) SetEarlyStop(value V) *Evaluator[N, V] {
	e.earlyStop = value
	e.hasEarlyStop = true
	return e
}

func (e *Evaluator[N, V]) SetLimits(limits *Limits) *Evaluator[N, V] {
	e.limiter.SetLimits(limits)
	return e
}

// Adds custom context to the limiter, enabling cancellation through it
func (e *Evaluator[N, V]) SetContext(ctx context.Context) *Evaluator[N, V] {
	e.limiter.SetContext(ctx)
	return e
}

func (e *Evaluator[N, V]) SetListener(listener StatsListener) *Evaluator[N, V] {
	e.listener = listener
	return e
}

func (e *Evaluator[N, V]) SetLimiter(limiter LimiterLike) *Evaluator[N, V] {
	if limiter != nil {
		e.limiter = limiter
	}
	return e
}

// Interrupt a running search, safe to call from another goroutine
func (e *Evaluator[N, V]) Stop() {
	e.limiter.SetStop(true)
}

// Run the search until it finishes or a limit is reached
func (e *Evaluator[N, V]) Search() {
	e.run(DefaultVisitsLimit)
}

// Run at most maxVisits more steps, useful to bound the work done on
// inputs of unknown size. The search can be resumed by calling it again.
func (e *Evaluator[N, V]) SearchWithMaxVisits(maxVisits uint64) {
	e.run(maxVisits)
}

func (e *Evaluator[N, V]) run(maxVisits uint64) {
	e.limiter.Reset()

	budget := maxVisits
	for !e.finished && budget > 0 && e.limiter.Ok(e.visits) {
		e.next()
		e.visits++
		budget--
		e.listener.invokeVisit(e.Stats, e.visits)
	}

	if !e.finished {
		e.limiter.EvaluateStopReason(e.visits)
		e.reason = e.limiter.StopReason()
		if budget == 0 {
			e.reason |= StopVisits
		}
	}

	invoke(e.listener.onStop, e.Stats)
}

// Single step: expand the tail node or prune it
func (e *Evaluator[N, V]) next() {
	if len(e.path) > e.maxDepth {
		e.prune()
		return
	}

	tail := e.path[len(e.path)-1]
	child, ok := tail.RequestNextChild()
	if !ok {
		e.prune()
		return
	}

	// Already solved subtree, fold the child's own value without descending
	if value, hit := e.cache.Get(child); hit {
		e.cacheHits++
		tail.OnChildPruned(child, value)
		return
	}

	e.path = append(e.path, child)
	if depth := len(e.path) - 1; depth > e.deepest {
		e.deepest = depth
		invoke(e.listener.onDepth, e.Stats)
	}
}

func (e *Evaluator[N, V]) prune() {
	if len(e.path) == 1 {
		e.rootValue = e.path[0].OnAllChildrenPruned()
		e.rootResolved = true
		e.finish(StopExhausted)
		return
	}

	last := len(e.path) - 1
	node := e.path[last]
	e.path = e.path[:last]

	value := node.OnAllChildrenPruned()
	if e.hasEarlyStop && value == e.earlyStop {
		e.finish(StopEarly)
		return
	}

	e.cache.Put(node, value)
	e.path[last-1].OnChildPruned(node, value)
}

func (e *Evaluator[N, V]) finish(reason StopReason) {
	e.finished = true
	e.reason = reason
}

func (e *Evaluator[N, V]) Finished() bool {
	return e.finished
}

func (e *Evaluator[N, V]) Root() N {
	return e.path[0]
}

// Copy of the current path, root first. After an early stop it holds the
// line leading to the matching node (the node itself already popped).
func (e *Evaluator[N, V]) Path() []N {
	out := make([]N, len(e.path))
	copy(out, e.path)
	return out
}

// The root's own value, available once every child of the root was pruned
func (e *Evaluator[N, V]) RootValue() (V, bool) {
	return e.rootValue, e.rootResolved
}

func (e *Evaluator[N, V]) StopReason() StopReason {
	return e.reason
}

// Number of steps taken so far, across all Search calls
func (e *Evaluator[N, V]) Visits() uint64 {
	return e.visits
}

// Deepest path reached, in edges below the root
func (e *Evaluator[N, V]) MaxDepth() int {
	return e.deepest
}

func (e *Evaluator[N, V]) CacheHits() uint64 {
	return e.cacheHits
}

func (e *Evaluator[N, V]) Stats() SearchStats {
	return SearchStats{
		Visits:     e.visits,
		MaxDepth:   e.deepest,
		PathLength: len(e.path),
		CacheSize:  e.cache.Size(),
		CacheHits:  e.cacheHits,
		TimeMs:     e.limiter.Elapsed(),
		StopReason: e.reason,
	}
}

// Diagnostic dump of the cache
func (e *Evaluator[N, V]) PrintCache(w io.Writer) error {
	_, err := fmt.Fprintf(w, "cache size %d\nnode value cache %s\n", e.cache.Size(), e.cache.String())
	return err
}
