package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/rs/zerolog"
)

// Default number of rejected moves a human may make in a single turn
const DefaultRetries = 3

var ErrTooManyAttempts = errors.New("too many rejected moves")

// Supplies the positions a human wants to play
type MoveSource interface {
	NextPosition(ctx context.Context, board gomoku.Board, marker gomoku.Marker) (gomoku.Position, error)
}

type MoveSourceFunc func(ctx context.Context, board gomoku.Board, marker gomoku.Marker) (gomoku.Position, error)

func (f MoveSourceFunc) NextPosition(ctx context.Context, board gomoku.Board, marker gomoku.Marker) (gomoku.Position, error) {
	return f(ctx, board, marker)
}

type HumanPlayer struct {
	name       string
	marker     gomoku.Marker
	source     MoveSource
	retries    int
	logger     zerolog.Logger
	onRejected func(gomoku.Position, error)
}

type HumanOption func(*HumanPlayer)

func WithRetries(retries int) HumanOption {
	return func(h *HumanPlayer) {
		h.retries = max(retries, 0)
	}
}

// Called with every rejected move, e.g. to tell the user what went wrong
func WithRejectedHandler(onRejected func(gomoku.Position, error)) HumanOption {
	return func(h *HumanPlayer) {
		h.onRejected = onRejected
	}
}

func WithHumanLogger(logger zerolog.Logger) HumanOption {
	return func(h *HumanPlayer) {
		h.logger = logger
	}
}

func NewHumanPlayer(name string, marker gomoku.Marker, source MoveSource, opts ...HumanOption) *HumanPlayer {
	h := &HumanPlayer{
		name:    name,
		marker:  marker,
		source:  source,
		retries: DefaultRetries,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HumanPlayer) Name() string {
	return h.name
}

func (h *HumanPlayer) Marker() gomoku.Marker {
	return h.marker
}

// Asks the source for a position until the board accepts it. Off-grid,
// occupied and unreadable positions are asked again, up to the retry budget.
func (h *HumanPlayer) Play(ctx context.Context, board gomoku.Board) (gomoku.Board, error) {
	var lastErr error
	for attempt := 0; attempt <= h.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return board, err
		}

		position, err := h.source.NextPosition(ctx, board, h.marker)
		if err == nil {
			var next gomoku.Board
			next, err = board.Play(position, h.marker)
			if err == nil {
				return next, nil
			}
		}
		if !retryable(err) {
			return board, fmt.Errorf("%s: %w", h.name, err)
		}

		lastErr = err
		h.logger.Debug().Err(err).Int("attempt", attempt+1).Msg("move rejected")
		if h.onRejected != nil {
			h.onRejected(position, err)
		}
	}
	return board, fmt.Errorf("%s: %w: %w", h.name, ErrTooManyAttempts, lastErr)
}

func retryable(err error) bool {
	var unknown *gomoku.UnknownPositionError
	return errors.Is(err, gomoku.ErrOutOfRange) ||
		errors.Is(err, gomoku.ErrIllegalMove) ||
		errors.As(err, &unknown)
}
