package bench

import "sync"

// Fans the arena events out to several listeners, one call at a time
type ArenaListener struct {
	mu        sync.Mutex
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	al := &ArenaListener{}
	for _, l := range listeners {
		if l != nil {
			al.listeners = append(al.listeners, l)
		}
	}
	return al
}

func (al *ArenaListener) each(f func(ListenerLike)) {
	al.mu.Lock()
	defer al.mu.Unlock()
	for _, l := range al.listeners {
		f(l)
	}
}

func (al *ArenaListener) OnGameStart(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnGameStart(info) })
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnMoveMade(info) })
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedGame(info) })
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedWork(info) })
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	al.each(func(l ListenerLike) { l.Summary(summary) })
}
