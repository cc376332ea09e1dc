package depgraph

import (
	"errors"
	"fmt"
)

// Returned by mutations on a state that was never inserted
var ErrUnknownState = errors.New("unknown state")

// Returned when propagation cannot resolve every state, which happens when
// the dependency relation has a cycle or the value function never succeeds
var ErrUnresolvable = errors.New("unresolvable states")

func unknownState(state any) error {
	return fmt.Errorf("%w: %v", ErrUnknownState, state)
}
