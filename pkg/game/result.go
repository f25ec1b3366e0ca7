package game

import (
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
)

// Final state of a game
type Result struct {
	Board  gomoku.Board
	Plays  int
	Winner gomoku.Marker
	Draw   bool
}

func resultOf(board gomoku.Board, plays int) Result {
	winner, _ := board.Winner()
	return Result{
		Board:  board,
		Plays:  plays,
		Winner: winner,
		Draw:   board.IsDraw(),
	}
}

func (r Result) String() string {
	if r.Draw {
		return fmt.Sprintf("draw after %d plays", r.Plays)
	}
	return fmt.Sprintf("%v wins after %d plays", r.Winner, r.Plays)
}
