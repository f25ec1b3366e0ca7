package search

import (
	"context"
	"sync/atomic"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by Stop() or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopNodes     StopReason = 4 // Node budget exhausted
	StopDepth     StopReason = 8 // Every branch reached the deepest level
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
		{StopNodes, "Nodes"},
		{StopDepth, "Depth"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	SetLimits(*Limits)
	Limits() *Limits
	// Elapsed time in ms since the last Reset
	Elapsed() uint32
	// Movetime deadline of the running search, ok is false without one
	Deadline() (time.Time, bool)
	// Set the stop signal, the search unwinds once it is true
	SetStop(bool)
	Stop() bool
	// Reset flags and the timer, called on search setup
	Reset()
	// Whether the search may keep going after visiting 'nodes' nodes
	Ok(nodes uint32) bool
	// Reason the search stopped, valid after the search ends
	StopReason() StopReason
	// Evaluate and store the stop reason, 'completed' tells whether the whole
	// tree was searched to the deepest level
	EvaluateStopReason(nodes uint32, completed bool)
}

type Limiter struct {
	limits *Limits
	Timer  *_Timer
	stop   atomic.Bool
	// latched once any limit is hit, so every frame of the recursion agrees
	exhausted bool
	reason    StopReason
	ctx       context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		Timer:  _NewTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.Timer.Movetime(l.limits.Movetime)
	l.Timer.Reset()
	l.stop.Store(false)
	l.exhausted = false
	l.reason = StopNone
}

func (l *Limiter) LimitMask(nodes uint32) StopReason {
	mask := StopNone
	if l.Stop() {
		mask |= StopInterrupt
	}
	if l.limits.Infinite {
		return mask
	}
	if l.Timer.IsEnd() {
		mask |= StopMovetime
	}
	if l.limits.Nodes <= nodes {
		mask |= StopNodes
	}
	return mask
}

func (l *Limiter) Ok(nodes uint32) bool {
	if l.exhausted {
		return false
	}
	if l.LimitMask(nodes) != StopNone {
		l.exhausted = true
	}
	return !l.exhausted
}

func (l *Limiter) EvaluateStopReason(nodes uint32, completed bool) {
	reason := l.LimitMask(nodes)
	if completed {
		// limits hit after the last leaf do not count
		reason = StopDepth
	}
	l.reason = reason
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
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

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() uint32 {
	return uint32(l.Timer.Deltatime())
}

func (l *Limiter) Deadline() (time.Time, bool) {
	return l.Timer.Deadline()
}
