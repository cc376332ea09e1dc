package shutthebox

import (
	"strconv"
	"strings"
)

// Tile numbered 1 through 9, its score is its number
type Tile uint8

const (
	One Tile = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

func (t Tile) Score() uint8 {
	return uint8(t)
}

func (t Tile) index() int {
	return int(t) - 1
}

// Tiles closed together, their scores add up to the dice roll
type Action []Tile

// Tile numbers of the action, in order
func (a Action) Values() []uint8 {
	out := make([]uint8, len(a))
	for i, t := range a {
		out[i] = t.Score()
	}
	return out
}

func (a Action) String() string {
	parts := make([]string, len(a))
	for i, t := range a {
		parts[i] = strconv.Itoa(int(t))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Every tile combination that can be closed for a roll, indexed by the roll
var combosByRoll = [13][]Action{
	2: {
		{Two},
	},
	3: {
		{Three},
		{One, Two},
	},
	4: {
		{Four},
		{One, Three},
	},
	5: {
		{Five},
		{One, Four},
		{Two, Three},
	},
	6: {
		{Six},
		{One, Five},
		{One, Two, Three},
		{Two, Four},
	},
	7: {
		{Seven},
		{One, Six},
		{One, Two, Four},
		{Two, Five},
		{Three, Four},
	},
	8: {
		{Eight},
		{One, Seven},
		{One, Two, Five},
		{One, Three, Four},
		{Two, Six},
		{Three, Five},
	},
	9: {
		{Nine},
		{One, Eight},
		{One, Two, Six},
		{One, Three, Five},
		{Two, Seven},
		{Two, Three, Four},
		{Three, Six},
		{Four, Five},
	},
	10: {
		{One, Nine},
		{One, Two, Seven},
		{One, Two, Three, Four},
		{One, Three, Six},
		{One, Four, Five},
		{Two, Eight},
		{Two, Three, Five},
		{Three, Seven},
		{Four, Six},
	},
	11: {
		{Two, Nine},
		{Two, One, Eight},
		{Two, One, Three, Five},
		{Two, Three, Six},
		{Two, Four, Five},
		{Three, Eight},
		{Three, One, Seven},
		{Four, Seven},
		{Four, One, Six},
		{Five, Six},
	},
	12: {
		{One, Two, Nine},
		{One, Two, Three, Six},
		{One, Two, Four, Five},
		{One, Three, Eight},
		{One, Four, Seven},
		{One, Five, Six},
		{Two, Three, Seven},
		{Two, Four, Six},
		{Three, Nine},
		{Three, Four, Five},
		{Four, Eight},
		{Five, Seven},
	},
}

// Tile combinations for the roll, empty outside of 2..12
func CombosFor(roll uint8) []Action {
	if int(roll) >= len(combosByRoll) {
		return nil
	}
	return combosByRoll[roll]
}

const (
	MinRoll uint8 = 2
	MaxRoll uint8 = 12
)

// Probability of rolling v with two six-sided dice
func TwoD6Probability(v uint8) float64 {
	if v < MinRoll || v > MaxRoll {
		return 0
	}
	ways := 6 - abs(int(v)-7)
	return float64(ways) / 36.0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
