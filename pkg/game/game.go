package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/player"
	"github.com/rs/zerolog"
)

var ErrSameMarker = errors.New("players must use different markers")

// Reported after every accepted play
type PlayEvent struct {
	Player   player.Player
	Position gomoku.Position
	Board    gomoku.Board
	// 1-based number of the play
	Ply int
}

type Option func(*Game)

// Start from a position other than the empty board
func WithBoard(board gomoku.Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func OnPlay(onPlay func(PlayEvent)) Option {
	return func(g *Game) {
		g.onPlay = onPlay
	}
}

// Turn-taking loop between two players
type Game struct {
	players [2]player.Player
	board   gomoku.Board
	logger  zerolog.Logger
	onPlay  func(PlayEvent)
}

// First plays first, players alternate until the game is over
func New(first, second player.Player, opts ...Option) (*Game, error) {
	if first.Marker() == second.Marker() {
		return nil, fmt.Errorf("%w: %v", ErrSameMarker, first.Marker())
	}
	g := &Game{
		players: [2]player.Player{first, second},
		board:   gomoku.NewBoard(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Game) Board() gomoku.Board {
	return g.board
}

// Plays until the game is over, the context is cancelled or a player fails
func (g *Game) Run(ctx context.Context) (Result, error) {
	plays := 0
	for turn := 0; !g.board.IsGameOver(); turn ^= 1 {
		current := g.players[turn]

		next, err := current.Play(ctx, g.board)
		if err != nil {
			return resultOf(g.board, plays), fmt.Errorf("play %d: %w", plays+1, err)
		}
		if next.MarkedCount() != g.board.MarkedCount()+1 {
			return resultOf(g.board, plays), fmt.Errorf("play %d: %s made %d plays",
				plays+1, current.Name(), next.MarkedCount()-g.board.MarkedCount())
		}

		g.board = next
		plays++
		g.logger.Debug().
			Int("ply", plays).
			Str("player", current.Name()).
			Stringer("position", next.LastPlayed()).
			Msg("play")

		if g.onPlay != nil {
			g.onPlay(PlayEvent{Player: current, Position: next.LastPlayed(), Board: next, Ply: plays})
		}
	}

	result := resultOf(g.board, plays)
	g.logger.Info().Stringer("result", result).Msg("game over")
	return result, nil
}
