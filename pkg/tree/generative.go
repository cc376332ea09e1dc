package tree

import "context"

// Node contract of the generative tree, there are no values: nodes
// accumulate whatever they need in OnChildPruned and Evaluate.
type GenerativeNodeLike[N any] interface {
	RequestNextChild() (N, bool)
	OnChildPruned(child N)
	// Finalize this node, returning true aborts the whole search
	Evaluate() (abort bool)
}

// Depth-first generator without memoization. The root is kept apart from
// the path and is never evaluated, children are generated while the path
// is shorter than maxDepth.
type Generative[N GenerativeNodeLike[N]] struct {
	root      N
	path      []N
	maxDepth  int
	completed bool
	aborted   bool
	visits    uint64
	limiter   LimiterLike
}

func NewGenerative[N GenerativeNodeLike[N]](root N, maxDepth int) *Generative[N] {
	return &Generative[N]{
		root:     root,
		path:     make([]N, 0, max(maxDepth, 0)),
		maxDepth: max(maxDepth, 0),
		limiter:  NewLimiter(),
	}
}

func (g *Generative[N]) SetLimits(limits *Limits) *Generative[N] {
	g.limiter.SetLimits(limits)
	return g
}

func (g *Generative[N]) SetContext(ctx context.Context) *Generative[N] {
	g.limiter.SetContext(ctx)
	return g
}

// Run until the root runs out of children or a node aborts, returns the root
// followed by the path at the moment the search ended
func (g *Generative[N]) Search() []N {
	g.limiter.Reset()
	for !g.completed && g.limiter.Ok(g.visits) {
		g.evaluateNext()
		g.visits++
	}

	if !g.completed {
		g.limiter.EvaluateStopReason(g.visits)
	}

	full := make([]N, 0, len(g.path)+1)
	full = append(full, g.root)
	return append(full, g.path...)
}

func (g *Generative[N]) evaluateNext() {
	if len(g.path) == 0 {
		child, ok := g.root.RequestNextChild()
		if !ok {
			g.completed = true
			return
		}
		g.path = append(g.path, child)
		return
	}

	if len(g.path) < g.maxDepth {
		if child, ok := g.path[len(g.path)-1].RequestNextChild(); ok {
			g.path = append(g.path, child)
			return
		}
	}
	g.evaluateAndPrune()
}

func (g *Generative[N]) evaluateAndPrune() {
	last := len(g.path) - 1
	node := g.path[last]
	g.path = g.path[:last]

	if node.Evaluate() {
		g.completed = true
		g.aborted = true
		return
	}

	if len(g.path) == 0 {
		g.root.OnChildPruned(node)
	} else {
		g.path[len(g.path)-1].OnChildPruned(node)
	}
}

func (g *Generative[N]) Root() N {
	return g.root
}

// Whether the search ended because a node asked to abort
func (g *Generative[N]) Aborted() bool {
	return g.aborted
}

func (g *Generative[N]) Completed() bool {
	return g.completed
}

func (g *Generative[N]) StopReason() StopReason {
	switch {
	case g.aborted:
		return StopEarly
	case g.completed:
		return StopExhausted
	}
	return g.limiter.StopReason()
}

func (g *Generative[N]) Visits() uint64 {
	return g.visits
}
