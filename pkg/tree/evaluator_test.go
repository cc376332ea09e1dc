package tree

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/IlikeChooros/go-dynsolve/pkg/cache"
)

// Child ids per node id, a node without an entry is a leaf
type dummyTree map[uint32][]uint32

// 1 -> {2, 3}, 3 -> {4, 5}
var smallTree = dummyTree{
	1: {2, 3},
	3: {4, 5},
}

// Leaf value is its own id, inner nodes take the max over their children
type dummyNode struct {
	id            uint32
	nextChild     int
	maxChildValue uint32
	tree          dummyTree
	requests      *int
}

func newDummyNode(id uint32, tree dummyTree) *dummyNode {
	return &dummyNode{id: id, tree: tree, requests: new(int)}
}

func (n *dummyNode) RequestNextChild() (*dummyNode, bool) {
	*n.requests++
	children := n.tree[n.id]
	if n.nextChild >= len(children) {
		return nil, false
	}
	return &dummyNode{id: children[n.nextChild], tree: n.tree, requests: n.requests}, true
}

func (n *dummyNode) OnChildPruned(child *dummyNode, value uint32) {
	n.nextChild++
	n.maxChildValue = max(n.maxChildValue, value)
}

func (n *dummyNode) OnAllChildrenPruned() uint32 {
	if n.nextChild == 0 {
		n.maxChildValue = n.id
	}
	return n.maxChildValue
}

func dummyKey(n *dummyNode) uint32 {
	return n.id
}

func TestNewEvaluator(t *testing.T) {
	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 2)

	if len(e.Path()) != 1 || e.Root() != root {
		t.Errorf("New evaluator path = %v, want only the root", e.Path())
	}
	if e.Finished() {
		t.Error("New evaluator is already finished")
	}
	if _, ok := e.RootValue(); ok {
		t.Error("New evaluator has a root value")
	}
}

func TestEvaluatorSearch(t *testing.T) {
	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, cache.NoOp[*dummyNode, uint32]{}, 2)
	e.Search()

	path := e.Path()
	if len(path) != 1 {
		t.Fatalf("Path length = %d, want 1", len(path))
	}
	if root.nextChild != 2 || root.maxChildValue != 5 {
		t.Errorf("Root = {next_child: %d, max_child_value: %d}, want {2, 5}", root.nextChild, root.maxChildValue)
	}
	if v, ok := e.RootValue(); !ok || v != 5 {
		t.Errorf("RootValue = (%v, %v), want (5, true)", v, ok)
	}
	if e.StopReason() != StopExhausted {
		t.Errorf("StopReason = %v, want Exhausted", e.StopReason())
	}
	if e.MaxDepth() != 2 {
		t.Errorf("MaxDepth = %d, want 2", e.MaxDepth())
	}
}

func TestEvaluatorDepthBound(t *testing.T) {
	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 1)
	e.Search()

	// Node 3 is pruned before its children are requested, so it counts as a leaf
	if v, _ := e.RootValue(); v != 3 {
		t.Errorf("RootValue = %d, want 3", v)
	}
	if e.MaxDepth() != 1 {
		t.Errorf("MaxDepth = %d, want 1", e.MaxDepth())
	}
}

func TestEvaluatorEarlyStop(t *testing.T) {
	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 2).SetEarlyStop(4)
	e.Search()

	if !e.Finished() || e.StopReason() != StopEarly {
		t.Fatalf("Finished = %v, StopReason = %v, want early stop", e.Finished(), e.StopReason())
	}

	ids := make([]uint32, 0)
	for _, n := range e.Path() {
		ids = append(ids, n.id)
	}
	if !slices.Equal(ids, []uint32{1, 3}) {
		t.Errorf("Path = %v, want [1 3]", ids)
	}

	// Node 5 was never visited
	if node3 := e.Path()[1]; node3.nextChild != 0 || node3.maxChildValue != 0 {
		t.Errorf("Node 3 folded a child after the early stop: %+v", node3)
	}
	if root.nextChild != 1 {
		t.Errorf("Root next_child = %d, want 1", root.nextChild)
	}
	if _, ok := e.RootValue(); ok {
		t.Error("Root value shouldn't be resolved after an early stop")
	}
}

func TestEvaluatorCachesPrunedNodes(t *testing.T) {
	root := newDummyNode(1, smallTree)
	c := cache.NewInMemory[*dummyNode, uint32, uint32](dummyKey)
	e := New[*dummyNode, uint32](root, c, 2)
	e.Search()

	var buf bytes.Buffer
	if err := e.PrintCache(&buf); err != nil {
		t.Fatal(err)
	}
	want := "cache size 4\nnode value cache {2: 2, 3: 5, 4: 4, 5: 5}\n"
	if buf.String() != want {
		t.Errorf("PrintCache = %q, want %q", buf.String(), want)
	}
}

func TestEvaluatorCacheHit(t *testing.T) {
	// Node 3 appears twice under the root, the second one is already solved
	tree := dummyTree{
		1: {3, 3},
		3: {4, 5},
	}
	root := newDummyNode(1, tree)
	c := cache.NewInMemory[*dummyNode, uint32, uint32](dummyKey)
	e := New[*dummyNode, uint32](root, c, 3)
	e.Search()

	if e.CacheHits() != 1 {
		t.Errorf("CacheHits = %d, want 1", e.CacheHits())
	}
	if root.nextChild != 2 || root.maxChildValue != 5 {
		t.Errorf("Root = {next_child: %d, max_child_value: %d}, want {2, 5}", root.nextChild, root.maxChildValue)
	}

	// Without the cache, the second subtree is explored again
	uncached := newDummyNode(1, tree)
	New[*dummyNode, uint32](uncached, nil, 3).Search()
	if *uncached.requests <= *root.requests {
		t.Errorf("Cached search requested %d children, uncached %d", *root.requests, *uncached.requests)
	}
}

func TestEvaluatorMaxVisits(t *testing.T) {
	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 2)

	e.SearchWithMaxVisits(3)
	if e.Finished() {
		t.Fatal("Search finished within 3 visits")
	}
	if e.Visits() != 3 {
		t.Errorf("Visits = %d, want 3", e.Visits())
	}
	if e.StopReason()&StopVisits == 0 {
		t.Errorf("StopReason = %v, want Visits", e.StopReason())
	}

	// Resume until the end
	e.Search()
	if v, ok := e.RootValue(); !ok || v != 5 {
		t.Errorf("RootValue after resuming = (%v, %v), want (5, true)", v, ok)
	}
}

func TestEvaluatorLimits(t *testing.T) {
	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 2).SetLimits(DefaultLimits().SetVisits(2))
	e.Search()

	if e.Finished() || e.Visits() != 2 {
		t.Errorf("Finished = %v, Visits = %d, want false, 2", e.Finished(), e.Visits())
	}
	if e.StopReason() != StopVisits {
		t.Errorf("StopReason = %v, want Visits", e.StopReason())
	}
}

func TestEvaluatorContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 2).SetContext(ctx)
	e.Search()

	if e.Visits() != 0 {
		t.Errorf("Cancelled search took %d steps", e.Visits())
	}
	if e.StopReason()&StopInterrupt == 0 {
		t.Errorf("StopReason = %v, want Interrupt", e.StopReason())
	}
}

func TestEvaluatorListener(t *testing.T) {
	depths := make([]int, 0)
	stops := 0
	var last SearchStats

	listener := NewStatsListener()
	listener.OnDepth(func(s SearchStats) {
		depths = append(depths, s.MaxDepth)
	}).OnStop(func(s SearchStats) {
		stops++
		last = s
	})

	root := newDummyNode(1, smallTree)
	e := New[*dummyNode, uint32](root, nil, 2).SetListener(listener)
	e.Search()

	if !slices.Equal(depths, []int{1, 2}) {
		t.Errorf("OnDepth received %v, want [1 2]", depths)
	}
	if stops != 1 {
		t.Errorf("OnStop called %d times", stops)
	}
	if last.StopReason != StopExhausted || last.Visits != e.Visits() {
		t.Errorf("OnStop stats = %+v", last)
	}
}

func TestStopReasonString(t *testing.T) {
	tests := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopEarly, "Early"},
		{StopVisits | StopEarly, "Visits|Early"},
		{StopInterrupt | StopMovetime, "Interrupt|Movetime"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
