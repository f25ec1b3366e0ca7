package search

import (
	"time"
)

// Move clock of a single search
type _Timer struct {
	start    time.Time
	deadline time.Time
	movetime time.Duration
}

func _NewTimer() *_Timer {
	return &_Timer{start: time.Now(), movetime: -1}
}

// In milliseconds, negative disables the deadline. Takes effect on Reset.
func (t *_Timer) Movetime(movetime int) {
	t.movetime = -1
	if movetime >= 0 {
		t.movetime = time.Duration(movetime) * time.Millisecond
	}
}

// Start the clock now
func (t *_Timer) Reset() {
	t.start = time.Now()
	if t.IsSet() {
		t.deadline = t.start.Add(t.movetime)
	}
}

func (t *_Timer) IsSet() bool {
	return t.movetime >= 0
}

func (t *_Timer) IsEnd() bool {
	return t.IsSet() && !time.Now().Before(t.deadline)
}

// Deadline of the running search, ok is false without a movetime
func (t *_Timer) Deadline() (deadline time.Time, ok bool) {
	return t.deadline, t.IsSet()
}

// Milliseconds since the last reset, at least 1
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}
