package tree

import (
	"context"
	"strings"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1  // Stopped by the caller, by calling Stop() or by context cancellation
	StopMovetime  StopReason = 2  // Time limit reached
	StopVisits    StopReason = 4  // Visit limit reached
	StopEarly     StopReason = 8  // A pruned node matched the early stopping value
	StopExhausted StopReason = 16 // Every child of the root was pruned
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopVisits, "Visits"},
		{StopEarly, "Early"},
		{StopExhausted, "Exhausted"},
	}

	names := make([]string, 0, len(reasons))
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			names = append(names, r.name)
		}
	}
	return strings.Join(names, "|")
}

// Whether the search ran to its natural end, rather than being cut short by a limit
func (sr StopReason) Completed() bool {
	return sr&(StopEarly|StopExhausted) != 0
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time in ms (from the last 'Reset' call)
	Elapsed() int
	// Set the stop signal, will cause to exit search if set to true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Whether the search may take another step
	Ok(visits uint64) bool
	// Evaluate stop reason based on the current state, valid after search ends
	EvaluateStopReason(visits uint64)
	// Get the reason why the search was stopped
	StopReason() StopReason
}

// Default limiter, the stop flag is atomic so the search can be interrupted
// from another goroutine
type Limiter struct {
	limits *Limits
	clock  *clock
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		clock:  newClock(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.clock.setMovetime(l.limits.Movetime)
	l.clock.reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() int {
	return l.clock.elapsedMs()
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func flagIf(cond bool, flag StopReason) StopReason {
	if cond {
		return flag
	}
	return StopNone
}

// Mask of the limits reached so far
func (l *Limiter) limitMask(visits uint64) StopReason {
	mask := flagIf(l.Stop(), StopInterrupt)
	if l.limits.Infinite {
		return mask
	}

	mask |= flagIf(l.clock.expired(), StopMovetime)
	mask |= flagIf(l.limits.Visits <= visits, StopVisits)
	return mask
}

func (l *Limiter) Ok(visits uint64) bool {
	return l.limitMask(visits) == StopNone
}

func (l *Limiter) EvaluateStopReason(visits uint64) {
	l.reason = l.limitMask(visits)
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}
