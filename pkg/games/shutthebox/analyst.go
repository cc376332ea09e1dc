package shutthebox

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/IlikeChooros/go-dynsolve/pkg/depgraph"
)

// Result of analysing a single state
type Result struct {
	State  State
	Action Action
	Value  float64
	// False when the state has no legal action
	Found bool
}

// Summary of a finished analysis, handed to the observer
type Report struct {
	State    State
	Stats    depgraph.Stats
	Duration time.Duration
	Found    bool
	Err      error
}

type Observer func(Report)

// Answers best action queries. Every query builds its own dependency graph,
// concurrent queries for the same state share one computation.
type Analyst struct {
	group    singleflight.Group
	logger   *slog.Logger
	observer Observer
}

func NewAnalyst(opts ...Option) *Analyst {
	o := newOptions(opts)
	return &Analyst{
		logger:   o.logger,
		observer: o.observer,
	}
}

func (a *Analyst) FindBestAction(ctx context.Context, state State) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	ch := a.group.DoChan(state.String(), func() (any, error) {
		return a.analyse(state)
	})

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Result{}, res.Err
		}
		if res.Shared {
			a.logger.Debug("shared analysis", "state", state.String())
		}
		return res.Val.(Result), nil
	}
}

func (a *Analyst) analyse(state State) (Result, error) {
	start := time.Now()
	g, err := Graph(state, WithLogger(a.logger))

	report := Report{State: state, Stats: g.Stats(), Err: err}
	result := Result{State: state}
	if err == nil {
		result.Action, result.Value, result.Found = state.BestAction(g)
		report.Found = result.Found
	}
	report.Duration = time.Since(start)

	a.logger.Debug("state analysed",
		"state", state.String(),
		"states", report.Stats.States,
		"found", result.Found,
		"duration", report.Duration,
	)
	if a.observer != nil {
		a.observer(report)
	}
	return result, err
}
