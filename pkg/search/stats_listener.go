package search

type RootMoveFunc func(RootMoveStats)
type StopFunc func(SearchStats)

// Observes a search. The callbacks are invoked on the searching goroutine.
type StatsListener struct {
	// called after each root child is evaluated
	onRootMove RootMoveFunc

	// called once when the search ends, with the final stats
	onStop StopFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

func (listener *StatsListener) OnRootMove(onRootMove RootMoveFunc) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

func (listener *StatsListener) OnStop(onStop StopFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeRootMove(stats RootMoveStats) {
	if listener.onRootMove != nil {
		listener.onRootMove(stats)
	}
}

func (listener *StatsListener) invokeStop(stats SearchStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
