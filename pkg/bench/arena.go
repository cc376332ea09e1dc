package bench

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, runs a list of independent solver jobs on a
bounded number of goroutines. Each job must build its own evaluator, the
engines are not safe for concurrent use.
*/

type SolveFunc[J, R any] func(ctx context.Context, job J) (R, error)

type Arena[J, R any] struct {
	ArenaStats
	Jobs     []J
	NThreads int
	Solve    SolveFunc[J, R]
	ctx      context.Context
	mu       sync.Mutex
}

func NewArena[J, R any](jobs []J, solve SolveFunc[J, R]) *Arena[J, R] {
	return &Arena[J, R]{
		Jobs:     jobs,
		NThreads: runtime.NumCPU(),
		Solve:    solve,
		ctx:      context.Background(),
	}
}

func (a *Arena[J, R]) WithContext(ctx context.Context) *Arena[J, R] {
	a.ctx = ctx
	return a
}

func (a *Arena[J, R]) Setup(nThreads int) *Arena[J, R] {
	a.NThreads = max(nThreads, 1)
	return a
}

// Run every job and wait for them. A failed job is reported in its result and
// doesn't stop the others, cancelling the context does: the jobs that didn't
// start are skipped and the context error is returned.
func (a *Arena[J, R]) Run(listener ListenerLike[J, R]) ([]JobResult[J, R], error) {
	if listener == nil {
		listener = DefaultListener[J, R]{}
	}

	start := time.Now()
	results := make([]JobResult[J, R], len(a.Jobs))
	listener.OnStart(len(a.Jobs))

	g, ctx := errgroup.WithContext(a.ctx)
	g.SetLimit(max(a.NThreads, 1))

	for i, job := range a.Jobs {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			jobStart := time.Now()
			r, err := a.Solve(ctx, job)
			results[i] = JobResult[J, R]{
				Index:   i,
				Job:     job,
				Result:  r,
				Err:     err,
				Elapsed: time.Since(jobStart),
			}

			a.mu.Lock()
			if err != nil {
				a.failed.Add(1)
			} else {
				a.solved.Add(1)
			}
			listener.OnJobDone(results[i], a.Total())
			a.mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = a.ctx.Err()
	}

	listener.Summary(SummaryInfo{
		TotalJobs: len(a.Jobs),
		Solved:    a.Solved(),
		Failed:    a.Failed(),
		Workers:   max(a.NThreads, 1),
		ElapsedMs: time.Since(start).Milliseconds(),
	})
	return results, err
}
