package wordgrid

// Compass direction on the grid, rows grow southwards
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionVectors = [...][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

func (d Direction) String() string {
	return directionNames[d]
}

// Column and row offsets of a step in this direction
func (d Direction) Vector() (dx, dy int) {
	v := directionVectors[d]
	return v[0], v[1]
}

func FromVector(dx, dy int) (Direction, bool) {
	for d, v := range directionVectors {
		if v[0] == dx && v[1] == dy {
			return Direction(d), true
		}
	}
	return 0, false
}

func (d Direction) NextClockwise() Direction {
	return (d + 1) % 8
}

func (d Direction) NextCounterClockwise() Direction {
	return (d + 7) % 8
}

// Directions going clockwise from 'start' to 'end', both included
func BetweenInclusiveCW(start, end Direction) []Direction {
	out := []Direction{start}
	for d := start.NextClockwise(); d != end; d = d.NextClockwise() {
		out = append(out, d)
	}
	if start != end {
		out = append(out, end)
	}
	return out
}

// Directions going clockwise from 'start' to 'end', both excluded
func BetweenExclusiveCW(start, end Direction) []Direction {
	out := make([]Direction, 0, 8)
	if start == end {
		return out
	}
	for d := start.NextClockwise(); d != end; d = d.NextClockwise() {
		out = append(out, d)
	}
	return out
}

func ClockwiseFromNorth() []Direction {
	return BetweenInclusiveCW(North, NorthWest)
}
