package search

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.Reset()

	if !limiter.Ok(1000000) {
		t.Error("Default limiter should not stop on nodes")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(99); !ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}
	if ok := limiter.Ok(101); ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	// latched until the next reset
	if ok := limiter.Ok(1); ok {
		t.Errorf("after exhaustion: ok=%v, want=%v", ok, !ok)
	}
	limiter.EvaluateStopReason(101, false)
	if limiter.StopReason() != StopNodes {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopNodes)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()
	time.Sleep(time.Millisecond * 101)

	if ok := limiter.Ok(1); ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}
	limiter.EvaluateStopReason(1, false)
	if limiter.StopReason() != StopMovetime {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopMovetime)
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterInterrupt(t *testing.T) {
	limiter := NewLimiter()
	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	limiter.Reset()

	if !limiter.Ok(1) {
		t.Fatal("limiter stopped before cancellation")
	}
	cancel()
	if limiter.Ok(2) {
		t.Error("limiter ignored context cancellation")
	}

	limiter.EvaluateStopReason(2, false)
	if limiter.StopReason() != StopInterrupt {
		t.Errorf("StopReason=%v, want=%v", limiter.StopReason(), StopInterrupt)
	}

	limiter.EvaluateStopReason(2, true)
	if limiter.StopReason() != StopDepth {
		t.Errorf("completed StopReason=%v, want=%v", limiter.StopReason(), StopDepth)
	}
}

func TestStopReasonString(t *testing.T) {
	tests := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopDepth, "Depth"},
		{StopInterrupt | StopNodes, "Interrupt|Nodes"},
		{StopMovetime | StopNodes | StopDepth, "Movetime|Nodes|Depth"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("%d.String()=%q, want=%q", int(tt.reason), got, tt.want)
		}
	}
}

func TestLimitsBuilder(t *testing.T) {
	limits := DefaultLimits()
	if !limits.Infinite || limits.Depth != DefaultDepthLimit {
		t.Errorf("default limits=%v", limits)
	}
	limits.SetDepth(0).SetMovetime(250)
	if limits.Depth != 1 || limits.Movetime != 250 || limits.Infinite {
		t.Errorf("limits=%v", limits)
	}
	limits.SetMovetime(-1)
	if !limits.Infinite {
		t.Errorf("disabling the only limit should make the search infinite: %v", limits)
	}
}

func TestTimerDeadline(t *testing.T) {
	timer := _NewTimer()
	timer.Reset()
	if _, ok := timer.Deadline(); ok || timer.IsEnd() {
		t.Error("timer without movetime should have no deadline")
	}

	timer.Movetime(0)
	timer.Reset()
	deadline, ok := timer.Deadline()
	if !ok || !timer.IsEnd() || deadline.After(time.Now()) {
		t.Errorf("zero movetime: deadline=%v ok=%v end=%v", deadline, ok, timer.IsEnd())
	}
}
