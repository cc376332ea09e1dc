package tree

import (
	"encoding/json"
	"math"
	"strings"
)

// Resource guards for a single search. The depth bound is not part of the
// limits, it belongs to the evaluator since it changes the search result.
type Limits struct {
	Visits   uint64
	Movetime int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultVisitsLimit   uint64 = math.MaxUint64
	DefaultMovetimeLimit int    = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Visits:   DefaultVisitsLimit,
		Movetime: DefaultMovetimeLimit,
		Infinite: true,
	}
}

// Set the maximum number of evaluation steps (expand or prune) per search
func (l *Limits) SetVisits(visits uint64) *Limits {
	l.Visits = visits
	l.Infinite = false
	return l
}

// Set the maximum search time, in milliseconds
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) *Limits {
	l.Infinite = infinite
	return l
}
