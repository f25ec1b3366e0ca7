package player

import (
	"context"
	"fmt"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/search"
	"github.com/rs/zerolog"
)

// Computer player backed by a search tree. The tree only considers moves in
// a focus area that follows the game around the board.
type AIPlayer struct {
	name      string
	marker    gomoku.Marker
	skill     Skill
	focus     gomoku.Area
	limits    *search.Limits
	listener  *search.StatsListener
	logger    zerolog.Logger
	lastStats search.SearchStats
}

type AIOption func(*AIPlayer)

func WithName(name string) AIOption {
	return func(a *AIPlayer) {
		a.name = name
	}
}

// Initial focus area, CentralArea by default
func WithFocus(focus gomoku.Area) AIOption {
	return func(a *AIPlayer) {
		a.focus = focus
	}
}

// Extra node/time limits for every search, the depth comes from the skill
func WithLimits(limits *search.Limits) AIOption {
	return func(a *AIPlayer) {
		a.limits = limits
	}
}

func WithStatsListener(listener search.StatsListener) AIOption {
	return func(a *AIPlayer) {
		a.listener = &listener
	}
}

func WithAILogger(logger zerolog.Logger) AIOption {
	return func(a *AIPlayer) {
		a.logger = logger
	}
}

func NewAIPlayer(marker gomoku.Marker, skill Skill, opts ...AIOption) *AIPlayer {
	a := &AIPlayer{
		name:   fmt.Sprintf("AI %v (%v)", marker, skill),
		marker: marker,
		skill:  skill,
		focus:  gomoku.CentralArea,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *AIPlayer) Name() string {
	return a.name
}

func (a *AIPlayer) Marker() gomoku.Marker {
	return a.marker
}

func (a *AIPlayer) Skill() Skill {
	return a.skill
}

func (a *AIPlayer) Focus() gomoku.Area {
	return a.focus
}

// Stats of the most recent search
func (a *AIPlayer) LastStats() search.SearchStats {
	return a.lastStats
}

// Re-centers the focus on last when it falls outside the focus or on its border
func (a *AIPlayer) Refocus(last gomoku.Position) {
	if !last.Valid() {
		return
	}
	if !last.In(a.focus) || a.focus.OnBorder(last) {
		a.focus = gomoku.AreaAround(last, gomoku.FocusSide)
		a.logger.Debug().Stringer("focus", a.focus).Stringer("last", last).Msg("focus moved")
	}
}

func (a *AIPlayer) Play(ctx context.Context, board gomoku.Board) (gomoku.Board, error) {
	if err := ctx.Err(); err != nil {
		return board, err
	}

	a.Refocus(board.LastPlayed())
	area := a.focus
	if len(board.EmptyPositions(area)) == 0 {
		area = gomoku.FullBoard
	}

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithLogger(a.logger),
	}
	if a.limits != nil {
		opts = append(opts, search.WithLimits(a.limits))
	}
	if a.listener != nil {
		opts = append(opts, search.WithListener(*a.listener))
	}

	tree := search.NewTree(board, area, a.skill.Depth(), opts...)
	position, err := tree.BestPositionFor(a.marker)
	a.lastStats = tree.Stats()
	if err != nil {
		return board, fmt.Errorf("%s: %w", a.name, err)
	}

	a.logger.Info().
		Stringer("position", position).
		Str("stats", a.lastStats.String()).
		Msg("ai played")
	return board.Play(position, a.marker)
}
