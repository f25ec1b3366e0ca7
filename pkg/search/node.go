package search

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/quenio/gomoku/pkg/gomoku"
)

// Search tree vertex: a board snapshot, the position played to reach it and
// its level below the root. Nodes are values, children own their boards.
type Node struct {
	board  gomoku.Board
	played gomoku.Position
	level  int
}

// Root of a search over board. The played position is the board's last play,
// or the center on a fresh board.
func NewRootNode(board gomoku.Board) Node {
	played := board.LastPlayed()
	if !played.Valid() {
		played = gomoku.Center
	}
	return Node{board: board, played: played}
}

func (n Node) Board() gomoku.Board {
	return n.board
}

func (n Node) PlayedPosition() gomoku.Position {
	return n.played
}

func (n Node) Level() int {
	return n.level
}

func (n Node) IsGameOver() bool {
	return n.board.IsGameOver()
}

// Marker on the played position, NoMarker for the root of a fresh board
func (n Node) Marker() gomoku.Marker {
	slot, _ := n.board.SlotAt(n.played)
	return slot.Marker()
}

// One child per empty position of area after marker plays there, closest to
// the played position first, row-major among equals
func (n Node) ChildrenFor(marker gomoku.Marker, area gomoku.Area) []Node {
	positions := n.board.EmptyPositions(area)
	children := make([]Node, len(positions))
	for i, p := range positions {
		children[i] = Node{
			board:  n.board.MustPlay(p, marker),
			played: p,
			level:  n.level + 1,
		}
	}

	slices.SortStableFunc(children, func(a, b Node) int {
		return cmp.Compare(a.played.DistanceTo(n.played), b.played.DistanceTo(n.played))
	})
	return children
}

// X-positive score: utility when the game is over, heuristic otherwise
func (n Node) Score() gomoku.Score {
	if score, err := n.UtilityScore(); err == nil {
		return score
	}
	return n.HeuristicScore()
}

// Score from marker's perspective
func (n Node) ScoreFor(marker gomoku.Marker) gomoku.Score {
	return n.Score().For(marker)
}

// Exact score of a finished game, ±Win or Draw
func (n Node) UtilityScore() (gomoku.Score, error) {
	if !n.board.IsGameOver() {
		return 0, ErrNotTerminal
	}
	winner, err := n.board.Winner()
	if err != nil {
		return gomoku.Draw, nil
	}
	return gomoku.Win.For(winner), nil
}

// Heuristic value of the played position, panics with *HeuristicOverflowError
// if it leaves [MinScore, MaxScore]
func (n Node) HeuristicScore() gomoku.Score {
	score := evaluate(n.board, n.played)
	if score > gomoku.MaxScore || score < gomoku.MinScore {
		panic(&HeuristicOverflowError{Position: n.played, Score: score})
	}
	return score
}

func (n Node) String() string {
	return fmt.Sprintf("Node{%v level=%d}", n.played, n.level)
}
