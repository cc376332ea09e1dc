package tree

// Snapshot of the evaluator's counters, passed to the listener callbacks
type SearchStats struct {
	Visits     uint64
	MaxDepth   int
	PathLength int
	CacheSize  int
	CacheHits  uint64
	TimeMs     int
	StopReason StopReason
}

// Listener function callback, will receive the current search statistics
type ListenerFunc func(SearchStats)

type StatsListener struct {
	// called when the deepest reached path grows, receives the new max depth
	onDepth ListenerFunc

	// called every N visits
	onVisit ListenerFunc
	nVisits uint64

	// called once, when the search stops (finished, limited or interrupted)
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nVisits: 1}
}

func (listener *StatsListener) OnDepth(onDepth ListenerFunc) *StatsListener {
	listener.onDepth = onDepth
	return listener
}

// Attach a callback invoked every 'interval' visits, see SetVisitInterval
func (listener *StatsListener) OnVisit(onVisit ListenerFunc) *StatsListener {
	listener.onVisit = onVisit
	return listener
}

func (listener *StatsListener) SetVisitInterval(n uint64) *StatsListener {
	listener.nVisits = max(n, 1)
	return listener
}

// Attach 'on search end' callback, 'StopReason' is set in the stats
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeVisit(stats func() SearchStats, visits uint64) {
	if listener.onVisit != nil && visits%max(listener.nVisits, 1) == 0 {
		listener.onVisit(stats())
	}
}

func invoke(f ListenerFunc, stats func() SearchStats) {
	if f != nil {
		f(stats())
	}
}
