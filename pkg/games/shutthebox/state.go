package shutthebox

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-dynsolve/pkg/depgraph"
)

var ErrInvalidTiles = errors.New("invalid tiles")

// Game state right after a roll: the dice value and which tiles are still open
type State struct {
	DiceValue uint8
	TilesOpen [9]bool
}

// All tiles open
func Fresh(diceValue uint8) State {
	return State{DiceValue: diceValue, TilesOpen: [9]bool{true, true, true, true, true, true, true, true, true}}
}

// Every possible first roll of a game
func Initial() []State {
	return RollsFor(Fresh(0).TilesOpen)
}

// One state per possible roll, with the given tiles open
func RollsFor(tilesOpen [9]bool) []State {
	states := make([]State, 0, MaxRoll-MinRoll+1)
	for roll := MinRoll; roll <= MaxRoll; roll++ {
		states = append(states, State{DiceValue: roll, TilesOpen: tilesOpen})
	}
	return states
}

// Parse tiles written as 9 characters, '1' for an open tile and '0' for a closed one,
// the first character is tile 1
func ParseTiles(s string) ([9]bool, error) {
	var tiles [9]bool
	if len(s) != len(tiles) {
		return tiles, fmt.Errorf("%w: want 9 characters, got %d", ErrInvalidTiles, len(s))
	}
	for i, c := range s {
		switch c {
		case '1':
			tiles[i] = true
		case '0':
		default:
			return tiles, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidTiles, c, i+1)
		}
	}
	return tiles, nil
}

// Sum of the open tiles, lower is better
func (s State) Score() uint32 {
	var sum uint32
	for i, open := range s.TilesOpen {
		if open {
			sum += uint32(i) + 1
		}
	}
	return sum
}

func (s State) ProbabilityOfRoll() float64 {
	return TwoD6Probability(s.DiceValue)
}

// Tile combinations for the current roll whose tiles are all open
func (s State) Actions() []Action {
	actions := make([]Action, 0)
	for _, combo := range CombosFor(s.DiceValue) {
		if s.allOpen(combo) {
			actions = append(actions, combo)
		}
	}
	return actions
}

func (s State) allOpen(a Action) bool {
	for _, t := range a {
		if !s.TilesOpen[t.index()] {
			return false
		}
	}
	return true
}

// States after closing the action's tiles, one per next roll
func (s State) PossibleTransitions(a Action) []State {
	tiles := s.TilesOpen
	for _, t := range a {
		tiles[t.index()] = false
	}
	return RollsFor(tiles)
}

func (s State) ReachableNextStates() []State {
	states := make([]State, 0)
	for _, a := range s.Actions() {
		states = append(states, s.PossibleTransitions(a)...)
	}
	return states
}

// Expected final score after taking the action, weighting each next roll by
// its probability. False if some next state isn't resolved.
func (s State) ActionValue(a Action, g depgraph.Reader[State, float64]) (float64, bool) {
	value := 0.0
	for _, next := range s.PossibleTransitions(a) {
		v, ok := g.Value(next)
		if !ok {
			return 0, false
		}
		value += v * next.ProbabilityOfRoll()
	}
	return value, true
}

// Action with the lowest expected score. False when there are no actions, or
// when any action can't be valued yet.
func (s State) BestAction(g depgraph.Reader[State, float64]) (Action, float64, bool) {
	var (
		best  Action
		value float64
		found bool
	)

	for _, a := range s.Actions() {
		v, ok := s.ActionValue(a, g)
		if !ok {
			return nil, 0, false
		}
		if !found || v < value {
			best, value, found = a, v, true
		}
	}
	return best, value, found
}

func (s State) String() string {
	var b strings.Builder
	for _, open := range s.TilesOpen {
		if open {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return fmt.Sprintf("{dice: %d, tiles: %s}", s.DiceValue, b.String())
}
