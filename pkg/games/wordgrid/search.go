package wordgrid

import (
	"context"
	"slices"

	"github.com/IlikeChooros/go-dynsolve/pkg/cache"
	"github.com/IlikeChooros/go-dynsolve/pkg/tree"
)

// Word found on the grid, with the cells spelling it
type Found struct {
	Word string `json:"word"`
	Path []int  `json:"path"`
}

// Search node: a path of distinct adjacent cells. The root has an empty path
// and every cell as a child.
type node struct {
	grid    *Grid
	dict    *Trie
	path    []int
	visited uint64
	next    int
	isWord  bool
	words   int
	found   *[]Found
}

func (n *node) candidates() []int {
	if len(n.path) == 0 {
		return nil
	}
	return n.grid.Neighbours(n.path[len(n.path)-1])
}

func (n *node) candidate(i int) (int, bool) {
	if len(n.path) == 0 {
		return i, i < n.grid.Cells()
	}
	c := n.candidates()
	if i >= len(c) {
		return 0, false
	}
	return c[i], true
}

// Skips cells already on the path and cells that can't start any word,
// a word is recorded when its node is created
func (n *node) RequestNextChild() (*node, bool) {
	for ; ; n.next++ {
		cell, ok := n.candidate(n.next)
		if !ok {
			return nil, false
		}
		if n.visited&(1<<cell) != 0 {
			continue
		}

		path := append(slices.Clip(n.path), cell)
		word := n.grid.Word(path)
		m := n.dict.Find(word)
		if !m.IsWord && !m.HasLongerWords {
			continue
		}

		child := &node{
			grid:    n.grid,
			dict:    n.dict,
			path:    path,
			visited: n.visited | 1<<cell,
			isWord:  m.IsWord,
			found:   n.found,
		}
		if m.IsWord {
			*n.found = append(*n.found, Found{Word: word, Path: slices.Clone(path)})
		}
		return child, true
	}
}

func (n *node) OnChildPruned(_ *node, words int) {
	n.next++
	n.words += words
}

// Number of words on paths starting with this one
func (n *node) OnAllChildrenPruned() int {
	if n.isWord {
		return n.words + 1
	}
	return n.words
}

// Every dictionary word that can be traced on the grid through adjacent,
// distinct cells. Words are listed in discovery order: by starting cell,
// then clockwise from north at every step. The same word appears once per
// path spelling it.
func FindAllWords(ctx context.Context, g *Grid, dict *Trie) ([]Found, error) {
	found := make([]Found, 0)
	root := &node{grid: g, dict: dict, found: &found}

	e := tree.New[*node, int](root, cache.NoOp[*node, int]{}, g.Cells()).SetContext(ctx)
	e.Search()

	if !e.StopReason().Completed() {
		return found, ctx.Err()
	}
	return found, nil
}

// Distinct words found, in discovery order
func Words(found []Found) []string {
	out := make([]string, 0, len(found))
	for _, f := range found {
		if !slices.Contains(out, f.Word) {
			out = append(out, f.Word)
		}
	}
	return out
}
