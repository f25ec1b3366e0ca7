package search

import (
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
)

// Counters of a single search
type SearchStats struct {
	Nodes      uint32
	Leaves     uint32
	Cutoffs    uint32
	MaxLevel   int
	TimeMs     int
	Nps        uint32
	Best       gomoku.Position
	Score      gomoku.Score
	Pv         []gomoku.Position
	StopReason StopReason
}

func (s SearchStats) String() string {
	return fmt.Sprintf("best %s score %v nodes %d leaves %d cutoffs %d level %d time %dms nps %d stop %v",
		s.Best.Notation(), s.Score, s.Nodes, s.Leaves, s.Cutoffs, s.MaxLevel, s.TimeMs, s.Nps, s.StopReason)
}

// Result of evaluating one root child
type RootMoveStats struct {
	Index    int
	Position gomoku.Position
	// Score from the searching marker's perspective
	Score gomoku.Score
	// Nodes visited under this child
	Nodes uint32
	Best  bool
}
