package bench

import (
	"github.com/rs/zerolog"
)

// Observes an arena, the calls come from the worker goroutines
type ListenerLike interface {
	OnGameStart(info VersusWorkerInfo)
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

// Logs game results and the summary, moves only at trace level
type DefaultListener struct {
	logger zerolog.Logger
}

func NewDefaultListener(logger zerolog.Logger) *DefaultListener {
	return &DefaultListener{logger: logger}
}

func (d DefaultListener) OnGameStart(info VersusWorkerInfo) {
	d.logger.Debug().
		Int("worker", info.WorkerID).
		Stringer("game", info.GameID).
		Str("first", info.P1Name).
		Str("second", info.P2Name).
		Msg("game started")
}

func (d DefaultListener) OnMoveMade(info VersusWorkerInfo) {
	if len(info.Moves) == 0 {
		return
	}
	d.logger.Trace().
		Int("worker", info.WorkerID).
		Stringer("game", info.GameID).
		Int("move", info.GameMoveNum).
		Stringer("position", info.Moves[len(info.Moves)-1]).
		Msg("move")
}

func (d DefaultListener) OnFinishedGame(info VersusWorkerInfo) {
	d.logger.Info().
		Int("worker", info.WorkerID).
		Stringer("game", info.GameID).
		Int("moves", info.GameMoveNum).
		Int("result", int(info.Result)).
		Int("finished", info.FinishedGames).
		Int("of", info.NGames).
		Msg("game finished")
}

func (d DefaultListener) OnFinishedWork(info VersusWorkerInfo) {
	d.logger.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker done")
}

func (d DefaultListener) Summary(summary VersusSummaryInfo) {
	d.logger.Info().
		Str("player1", summary.P1Name).
		Str("player2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("p1_wins", summary.P1Wins).
		Int("p2_wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first_to_move_wins", summary.FirstToMoveWins).
		Msg("arena summary")
}
