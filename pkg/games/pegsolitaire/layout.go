package pegsolitaire

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Jump over a neighbouring hole into the one behind it
type jump struct {
	over, to int
}

// Position of a hole when the board is drawn, x counts characters
type cell struct {
	row, x int
}

// Board geometry: the holes and the jumps available from each of them,
// in the order moves are generated
type Layout struct {
	Name  string
	jumps [][]jump
	cells []cell
	// hole left empty by Start when none is given
	defaultHole int
}

var (
	englishLayout  = newEnglish()
	triangleLayout = newTriangle()
)

// Cross shaped board with 33 holes, the centre hole is 16
func English() *Layout {
	return englishLayout
}

// Triangular board with 15 holes in 5 rows
func Triangle() *Layout {
	return triangleLayout
}

func LayoutByName(name string) (*Layout, error) {
	switch strings.ToLower(name) {
	case englishLayout.Name:
		return englishLayout, nil
	case triangleLayout.Name:
		return triangleLayout, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

func (l *Layout) Holes() int {
	return len(l.jumps)
}

func (l *Layout) DefaultHole() int {
	return l.defaultHole
}

func (l *Layout) checkHole(hole int) {
	if hole < 0 || hole >= l.Holes() {
		panic(fmt.Sprintf("pegsolitaire: hole %d outside the %s layout", hole, l.Name))
	}
}

// Board with every hole filled except 'emptyHole'
func (l *Layout) Start(emptyHole int) Board {
	l.checkHole(emptyHole)
	full := Board(1)<<l.Holes() - 1
	return full.without(emptyHole)
}

// Moves available on the board, ordered by source hole and then by the
// layout's jump order
func (l *Layout) LegalMoves(b Board) []Move {
	moves := make([]Move, 0, 8)
	for from, jumps := range l.jumps {
		if !b.Has(from) {
			continue
		}
		for _, j := range jumps {
			if b.Has(j.over) && !b.Has(j.to) {
				moves = append(moves, Move{From: from, Over: j.over, To: j.to})
			}
		}
	}
	return moves
}

// Draw the board, 'o' for a peg and '.' for an empty hole
func (l *Layout) Render(b Board) string {
	rows := make([][]byte, 0)
	for hole, c := range l.cells {
		for len(rows) <= c.row {
			rows = append(rows, nil)
		}
		for len(rows[c.row]) <= c.x {
			rows[c.row] = append(rows[c.row], ' ')
		}
		if b.Has(hole) {
			rows[c.row][c.x] = 'o'
		} else {
			rows[c.row][c.x] = '.'
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// 7x7 grid without the 2x2 corners, holes numbered row by row. Jumps are
// tried left, right, up, down.
func newEnglish() *Layout {
	type pos struct{ r, c int }
	inBoard := func(p pos) bool {
		return p.r >= 0 && p.r < 7 && p.c >= 0 && p.c < 7 &&
			((p.r >= 2 && p.r <= 4) || (p.c >= 2 && p.c <= 4))
	}

	index := make(map[pos]int)
	cells := make([]cell, 0, 33)
	for r := range 7 {
		for c := range 7 {
			if inBoard(pos{r, c}) {
				index[pos{r, c}] = len(cells)
				cells = append(cells, cell{row: r, x: 2 * c})
			}
		}
	}

	directions := []pos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumps := make([][]jump, len(cells))
	for p, i := range index {
		for _, d := range directions {
			over := pos{p.r + d.r, p.c + d.c}
			to := pos{p.r + 2*d.r, p.c + 2*d.c}
			if inBoard(over) && inBoard(to) {
				jumps[i] = append(jumps[i], jump{over: index[over], to: index[to]})
			}
		}
	}

	return &Layout{Name: "english", jumps: jumps, cells: cells, defaultHole: index[pos{3, 3}]}
}

// Rows of 1 to 5 holes, numbered top to bottom and left to right
func newTriangle() *Layout {
	jumps := [][]jump{
		0:  {{1, 3}, {2, 5}},
		1:  {{3, 6}, {4, 8}},
		2:  {{4, 7}, {5, 9}},
		3:  {{1, 0}, {4, 5}, {6, 10}, {7, 12}},
		4:  {{7, 11}, {8, 13}},
		5:  {{2, 0}, {4, 3}, {8, 12}, {9, 14}},
		6:  {{3, 1}, {7, 8}},
		7:  {{4, 2}, {8, 9}},
		8:  {{4, 1}, {7, 6}},
		9:  {{5, 2}, {8, 7}},
		10: {{6, 3}, {11, 12}},
		11: {{7, 4}, {12, 13}},
		12: {{11, 10}, {7, 3}, {8, 5}, {13, 14}},
		13: {{8, 4}, {12, 11}},
		14: {{9, 5}, {13, 12}},
	}

	cells := make([]cell, 0, len(jumps))
	for row := range 5 {
		for k := 0; k <= row; k++ {
			cells = append(cells, cell{row: row, x: 4 - row + 2*k})
		}
	}

	return &Layout{Name: "triangle", jumps: jumps, cells: cells, defaultHole: 0}
}
