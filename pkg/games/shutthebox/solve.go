package shutthebox

import (
	"log/slog"

	"github.com/IlikeChooros/go-dynsolve/internal/logging"
	"github.com/IlikeChooros/go-dynsolve/pkg/depgraph"
)

type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Called after every solved state, see Report
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Terminal states (no legal action) are worth their score, others the
// expected score of their best action
func stateValue(s State, g depgraph.Reader[State, float64]) (float64, bool) {
	if len(s.Actions()) == 0 {
		return float64(s.Score()), true
	}
	_, v, ok := s.BestAction(g)
	return v, ok
}

// Build the graph of states reachable from the given one and resolve their values
func Graph(initial State, opts ...Option) (*depgraph.Graph[State, float64], error) {
	o := newOptions(opts)
	g := depgraph.Generate[State, float64](
		State.ReachableNextStates,
		[]State{initial},
		depgraph.WithLogger(o.logger),
	)
	if err := g.ComputeValues(stateValue); err != nil {
		return g, err
	}
	return g, nil
}

// Best action for the state and its expected final score. Found is false if
// the state has no legal action, the game is over.
func Solve(initial State, opts ...Option) (action Action, value float64, found bool, err error) {
	g, err := Graph(initial, opts...)
	if err != nil {
		return nil, 0, false, err
	}
	action, value, found = initial.BestAction(g)
	return action, value, found, nil
}
