package wordgrid

import "strings"

// Prefix tree of dictionary words, case insensitive like the grid letters
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[rune]*trieNode
	final    bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Result of a lookup: whether the string is a word, and whether some
// longer word starts with it
type Match struct {
	IsWord         bool
	HasLongerWords bool
}

func NewTrie(words ...string) *Trie {
	t := &Trie{root: newTrieNode()}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}

	node := t.root
	for _, r := range strings.ToLower(word) {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	if !node.final {
		node.final = true
		t.size++
	}
}

// Number of distinct words
func (t *Trie) Size() int {
	return t.size
}

func (t *Trie) Find(s string) Match {
	node := t.root
	for _, r := range strings.ToLower(s) {
		child, ok := node.children[r]
		if !ok {
			return Match{}
		}
		node = child
	}
	return Match{IsWord: node.final, HasLongerWords: len(node.children) > 0}
}

// Whether some word starts with s, s itself included
func (t *Trie) HasPrefix(s string) bool {
	m := t.Find(s)
	return m.IsWord || m.HasLongerWords
}
