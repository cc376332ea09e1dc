package bench

import (
	"sync/atomic"
	"time"
)

// Counters shared by the arena workers
type ArenaStats struct {
	solved atomic.Uint32
	failed atomic.Uint32
}

func (as *ArenaStats) Total() int {
	return as.Solved() + as.Failed()
}

func (as *ArenaStats) Solved() int {
	return int(as.solved.Load())
}

func (as *ArenaStats) Failed() int {
	return int(as.failed.Load())
}

// Outcome of a single job, Index is the job's position in the input list
type JobResult[J, R any] struct {
	Index   int
	Job     J
	Result  R
	Err     error
	Elapsed time.Duration
}

// Whether the job was solved without error
func (jr JobResult[J, R]) Ok() bool {
	return jr.Err == nil
}

type SummaryInfo struct {
	TotalJobs int   `json:"total_jobs"`
	Solved    int   `json:"solved"`
	Failed    int   `json:"failed"`
	Workers   int   `json:"workers"`
	ElapsedMs int64 `json:"elapsed_ms"`
}
