package wordgrid

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidGrid = errors.New("invalid grid")

const maxCells = 64

// Rectangular letter grid, cells numbered row by row
type Grid struct {
	rows, cols int
	letters    []rune
	// neighbours of each cell, clockwise starting north
	neighbours [][]int
}

func NewGrid(rows, cols int, letters string) (*Grid, error) {
	runes := []rune(strings.ToLower(letters))
	if rows <= 0 || cols <= 0 || rows*cols > maxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if len(runes) != rows*cols {
		return nil, fmt.Errorf("%w: want %d letters, got %d", ErrInvalidGrid, rows*cols, len(runes))
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q is not a letter", ErrInvalidGrid, r)
		}
	}

	g := &Grid{rows: rows, cols: cols, letters: runes}
	g.neighbours = make([][]int, len(runes))
	for cell := range runes {
		g.neighbours[cell] = g.clockwiseNeighbours(cell)
	}
	return g, nil
}

// 4x4 grid from 16 letters
func Parse4x4(letters string) (*Grid, error) {
	return NewGrid(4, 4, letters)
}

func (g *Grid) Cells() int {
	return len(g.letters)
}

func (g *Grid) Letter(cell int) rune {
	return g.letters[cell]
}

func (g *Grid) Neighbours(cell int) []int {
	return g.neighbours[cell]
}

// Cell one step away in the direction, false when it falls off the grid
func (g *Grid) NeighbourInDirection(cell int, d Direction) (int, bool) {
	dx, dy := d.Vector()
	row, col := cell/g.cols+dy, cell%g.cols+dx
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, false
	}
	return row*g.cols + col, true
}

func (g *Grid) clockwiseNeighbours(cell int) []int {
	out := make([]int, 0, 8)
	for _, d := range ClockwiseFromNorth() {
		if n, ok := g.NeighbourInDirection(cell, d); ok {
			out = append(out, n)
		}
	}
	return out
}

func (g *Grid) Word(path []int) string {
	var sb strings.Builder
	for _, cell := range path {
		sb.WriteRune(g.letters[cell])
	}
	return sb.String()
}

func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.rows {
		for col := range g.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(unicode.ToUpper(g.letters[row*g.cols+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
