package bench

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOdd = errors.New("odd job")

func square(_ context.Context, n int) (int, error) {
	if n%2 == 1 {
		return 0, errOdd
	}
	return n * n, nil
}

type recordingListener struct {
	started  int
	finished []int
	summary  SummaryInfo
}

func (r *recordingListener) OnStart(total int) { r.started = total }

func (r *recordingListener) OnJobDone(_ JobResult[int, int], finished int) {
	r.finished = append(r.finished, finished)
}

func (r *recordingListener) Summary(info SummaryInfo) { r.summary = info }

func TestArenaRun(t *testing.T) {
	jobs := []int{0, 1, 2, 3, 4, 5, 6}
	listener := &recordingListener{}

	arena := NewArena(jobs, square).Setup(3)
	results, err := arena.Run(listener)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, jobs[i], r.Job)
		if jobs[i]%2 == 1 {
			assert.ErrorIs(t, r.Err, errOdd)
		} else {
			assert.True(t, r.Ok())
			assert.Equal(t, jobs[i]*jobs[i], r.Result)
		}
	}

	assert.Equal(t, 4, arena.Solved())
	assert.Equal(t, 3, arena.Failed())
	assert.Equal(t, 7, arena.Total())

	assert.Equal(t, 7, listener.started)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, listener.finished)
	assert.Equal(t, SummaryInfo{
		TotalJobs: 7, Solved: 4, Failed: 3, Workers: 3, ElapsedMs: listener.summary.ElapsedMs,
	}, listener.summary)
}

func TestArenaRespectsThreadLimit(t *testing.T) {
	var running, peak atomic.Int32
	solve := func(_ context.Context, n int) (int, error) {
		cur := running.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return n, nil
	}

	jobs := make([]int, 20)
	_, err := NewArena(jobs, solve).Setup(2).Run(nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestArenaCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once

	solve := func(ctx context.Context, n int) (int, error) {
		once.Do(cancel)
		<-ctx.Done()
		return 0, ctx.Err()
	}

	jobs := make([]int, 50)
	arena := NewArena(jobs, solve).WithContext(ctx).Setup(1)
	_, err := arena.Run(nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, arena.Total(), len(jobs))
}

func TestProgressListener(t *testing.T) {
	var buf bytes.Buffer
	listener := NewProgressListener[int, int](&buf)

	_, err := NewArena([]int{2, 4}, square).Setup(1).Run(listener)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[2/2] job 1 ok")
	assert.Contains(t, out, "2/2 solved, 0 failed")
}
