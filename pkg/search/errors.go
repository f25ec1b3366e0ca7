package search

import (
	"errors"
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
)

var (
	ErrNotTerminal  = errors.New("node is not terminal")
	ErrNoLegalMoves = errors.New("no legal moves in the focus area")
)

// Raised (as a panic) when a heuristic value leaves [MinScore, MaxScore]
type HeuristicOverflowError struct {
	Position gomoku.Position
	Score    gomoku.Score
}

func (e *HeuristicOverflowError) Error() string {
	return fmt.Sprintf("heuristic score %d at %v exceeds the maximum %d", e.Score, e.Position, gomoku.MaxScore)
}
