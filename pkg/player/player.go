package player

import (
	"context"

	"github.com/quenio/gomoku/pkg/gomoku"
)

// Participant of a game, given the current board it returns the board after its play
type Player interface {
	Name() string
	Marker() gomoku.Marker
	Play(ctx context.Context, board gomoku.Board) (gomoku.Board, error)
}
