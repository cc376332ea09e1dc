package wordgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

var ErrInvalidWord = errors.New("invalid word")

const alphabet = 26

// Fixed length word list indexed by (letter, position). Every pair maps to
// a bitmask over the word list, queries combine masks with And/Or.
type Index struct {
	length    int
	words     []string
	seen      map[string]struct{}
	locations []*bitset.BitSet
}

// Build an index of words of exactly 'length' letters a..z, case insensitive
func NewIndex(length int, words ...string) (*Index, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidWord, length)
	}

	ix := &Index{
		length:    length,
		seen:      make(map[string]struct{}, len(words)),
		locations: make([]*bitset.BitSet, alphabet*length),
	}
	for i := range ix.locations {
		ix.locations[i] = bitset.New(uint(len(words)))
	}
	for _, w := range words {
		if err := ix.Insert(w); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// Add a word, duplicates are ignored
func (ix *Index) Insert(word string) error {
	word = strings.ToLower(word)
	if len(word) != ix.length {
		return fmt.Errorf("%w: %q is not %d letters long", ErrInvalidWord, word, ix.length)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return fmt.Errorf("%w: %q has a non a-z letter", ErrInvalidWord, word)
		}
	}
	if _, ok := ix.seen[word]; ok {
		return nil
	}

	id := uint(len(ix.words))
	ix.words = append(ix.words, word)
	ix.seen[word] = struct{}{}
	for i := 0; i < len(word); i++ {
		ix.locations[ix.slot(word[i], i)].Set(id)
	}
	return nil
}

func (ix *Index) slot(letter byte, position int) int {
	return position*alphabet + int(letter-'a')
}

func (ix *Index) WordLength() int {
	return ix.length
}

// Number of distinct words
func (ix *Index) Size() int {
	return len(ix.words)
}

// Words matching the query, in insertion order
func (ix *Index) Match(q Query) []string {
	mask := q.mask(ix)
	out := make([]string, 0, mask.Count())
	for i, ok := mask.NextSet(0); ok; i, ok = mask.NextSet(i + 1) {
		out = append(out, ix.words[i])
	}
	return out
}

func (ix *Index) none() *bitset.BitSet {
	return bitset.New(uint(len(ix.words)))
}

// Query tree over letter positions
type Query interface {
	mask(ix *Index) *bitset.BitSet
	String() string
}

type at struct {
	letter   rune
	position int
}

// Words with 'letter' at the 1-based position. A letter outside a..z or a
// position outside the word matches nothing.
func At(letter rune, position int) Query {
	return at{letter: letter, position: position}
}

func (q at) mask(ix *Index) *bitset.BitSet {
	l := unicode.ToLower(q.letter)
	if l < 'a' || l > 'z' || q.position < 1 || q.position > ix.length {
		return ix.none()
	}
	return ix.locations[ix.slot(byte(l), q.position-1)].Clone()
}

func (q at) String() string {
	return fmt.Sprintf("%c%d", q.letter, q.position)
}

type op struct {
	and         bool
	left, right Query
}

func And(left, right Query) Query {
	return op{and: true, left: left, right: right}
}

func Or(left, right Query) Query {
	return op{left: left, right: right}
}

func (q op) mask(ix *Index) *bitset.BitSet {
	l, r := q.left.mask(ix), q.right.mask(ix)
	if q.and {
		return l.Intersection(r)
	}
	return l.Union(r)
}

func (q op) String() string {
	name := "or"
	if q.and {
		name = "and"
	}
	return fmt.Sprintf("%s(%s, %s)", name, q.left, q.right)
}

// Parse a query term such as "s1": a letter followed by its 1-based position
func ParseAt(term string) (Query, error) {
	runes := []rune(strings.TrimSpace(term))
	if len(runes) < 2 {
		return nil, fmt.Errorf("%w: term %q", ErrInvalidWord, term)
	}
	position, err := strconv.Atoi(string(runes[1:]))
	if err != nil {
		return nil, fmt.Errorf("%w: term %q: %v", ErrInvalidWord, term, err)
	}
	return At(runes[0], position), nil
}
