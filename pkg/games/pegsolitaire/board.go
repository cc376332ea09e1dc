package pegsolitaire

import (
	"fmt"
	"math/bits"
)

// Peg positions as a bitset, bit i set when hole i holds a peg
type Board uint64

type Move struct {
	From int `json:"from"`
	Over int `json:"over"`
	To   int `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d-%d-%d", m.From, m.Over, m.To)
}

func checkIndex(i int) {
	if i < 0 || i >= 64 {
		panic(fmt.Sprintf("pegsolitaire: board index %d out of range", i))
	}
}

func (b Board) Has(hole int) bool {
	checkIndex(hole)
	return b&(1<<hole) != 0
}

func (b Board) with(hole int) Board {
	return b | 1<<hole
}

func (b Board) without(hole int) Board {
	return b &^ (1 << hole)
}

func (b Board) CountPegs() int {
	return bits.OnesCount64(uint64(b))
}

// Board after the move. Panics if the source or the jumped over hole is empty,
// or the destination is occupied.
func (b Board) Apply(m Move) Board {
	if !b.Has(m.From) || !b.Has(m.Over) || b.Has(m.To) {
		panic(fmt.Sprintf("pegsolitaire: illegal move %v", m))
	}
	return b.without(m.From).without(m.Over).with(m.To)
}
