package bench

import (
	"fmt"
	"io"
)

// ANSI codes
const (
	ANSI_CLEAR_LINE  = "\033[2K"
	ANSI_CURSOR_HIDE = "\033[?25l"
	ANSI_CURSOR_SHOW = "\033[?25h"
)

// Arena callbacks. The arena serializes the calls, implementations
// don't need their own locking.
type ListenerLike[J, R any] interface {
	OnStart(totalJobs int)
	OnJobDone(result JobResult[J, R], finished int)
	Summary(info SummaryInfo)
}

type DefaultListener[J, R any] struct{}

func (DefaultListener[J, R]) OnStart(int) {}

func (DefaultListener[J, R]) OnJobDone(JobResult[J, R], int) {}

func (DefaultListener[J, R]) Summary(SummaryInfo) {}

// Single line progress counter, meant for a terminal
type ProgressListener[J, R any] struct {
	w     io.Writer
	total int
}

func NewProgressListener[J, R any](w io.Writer) *ProgressListener[J, R] {
	return &ProgressListener[J, R]{w: w}
}

func (p *ProgressListener[J, R]) OnStart(totalJobs int) {
	p.total = totalJobs
	fmt.Fprint(p.w, ANSI_CURSOR_HIDE)
}

func (p *ProgressListener[J, R]) OnJobDone(result JobResult[J, R], finished int) {
	status := "ok"
	if !result.Ok() {
		status = "failed"
	}
	fmt.Fprintf(p.w, "\r%s[%d/%d] job %d %s (%dms)", ANSI_CLEAR_LINE,
		finished, p.total, result.Index, status, result.Elapsed.Milliseconds())
}

func (p *ProgressListener[J, R]) Summary(info SummaryInfo) {
	fmt.Fprintf(p.w, "\r%s%d/%d solved, %d failed in %dms%s\n", ANSI_CLEAR_LINE,
		info.Solved, info.TotalJobs, info.Failed, info.ElapsedMs, ANSI_CURSOR_SHOW)
}
