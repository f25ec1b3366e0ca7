package bench

/*
Arena benchmark subpackage, plays a series of games between two AI
configurations and counts who wins.
*/

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/quenio/gomoku/pkg/game"
	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/player"
	"github.com/quenio/gomoku/pkg/search"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// AI configuration taking part in the arena
type Agent struct {
	Name   string
	Skill  player.Skill
	Limits *search.Limits
}

func (a Agent) newPlayer(marker gomoku.Marker, logger zerolog.Logger) player.Player {
	opts := []player.AIOption{player.WithName(a.Name), player.WithAILogger(logger)}
	if a.Limits != nil {
		opts = append(opts, player.WithLimits(a.Limits.Clone()))
	}
	return player.NewAIPlayer(marker, a.Skill, opts...)
}

type VersusArena struct {
	VersusArenaStats
	Player1  Agent
	Player2  Agent
	NGames   int
	NWorkers int
	// Random plies played inside the central area before the agents take over,
	// so deterministic agents do not replay the same game
	OpeningPlies int
	logger       zerolog.Logger
	started      atomic.Uint32
}

func NewVersusArena(p1, p2 Agent) *VersusArena {
	return &VersusArena{
		Player1:      p1,
		Player2:      p2,
		NGames:       10,
		NWorkers:     2,
		OpeningPlies: 2,
		logger:       zerolog.Nop(),
	}
}

func (va *VersusArena) WithLogger(logger zerolog.Logger) *VersusArena {
	va.logger = logger
	return va
}

func (va *VersusArena) Setup(nGames, nWorkers, openingPlies int) *VersusArena {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	va.OpeningPlies = max(openingPlies, 0)
	return va
}

// Plays all the games, distributed equally between the workers. Returns on
// the first failed game or when ctx is cancelled.
func (va *VersusArena) Run(ctx context.Context, listener ListenerLike) (VersusSummaryInfo, error) {
	if listener == nil {
		listener = NewArenaListener()
	}
	va.VersusArenaStats = VersusArenaStats{}
	va.started.Store(0)

	workers := min(va.NWorkers, max(va.NGames, 1))
	group, ctx := errgroup.WithContext(ctx)

	nGames := va.NGames / workers
	rest := va.NGames % workers
	for id := 0; id < workers; id++ {
		id := id
		games := nGames
		if id < rest {
			games++
		}
		group.Go(func() error {
			return va.worker(ctx, id, games, listener)
		})
	}

	err := group.Wait()
	summary := va.summary(workers)
	listener.Summary(summary)
	return summary, err
}

func (va *VersusArena) summary(workers int) VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          workers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, listener ListenerLike) error {
	local := VersusArenaStats{}
	defer func() {
		listener.OnFinishedWork(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: local.Total(),
			P1Wins:        local.P1Wins(),
			P2Wins:        local.P2Wins(),
			Draws:         local.Draws(),
			P1Name:        va.Player1.Name,
			P2Name:        va.Player2.Name,
		})
	}()

	for i := 0; i < nGames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// alternate the first player over the whole arena
		p1First := va.started.Add(1)%2 == 1
		result, outcome, err := va.playGame(ctx, id, nGames, p1First, listener)
		if err != nil {
			return err
		}

		local.add(result, outcome)
		va.add(result, outcome)
	}
	return nil
}

func (va *VersusArena) playGame(ctx context.Context, workerID, nGames int, p1First bool, listener ListenerLike) (VersusMatchResult, GameOutcome, error) {
	first, second := va.Player1, va.Player2
	if !p1First {
		first, second = second, first
	}

	opening, plays := randomOpening(va.OpeningPlies)
	moves := make([]gomoku.Position, 0, 64)
	moves = append(moves, plays...)

	// X always opens, the first agent takes whichever marker moves next
	toMove := gomoku.X
	if len(plays)%2 == 1 {
		toMove = gomoku.O
	}
	firstPlayer := first.newPlayer(toMove, va.logger)
	secondPlayer := second.newPlayer(toMove.Opponent(), va.logger)

	info := VersusWorkerInfo{
		WorkerID:    workerID,
		GameID:      uuid.New(),
		NGames:      nGames,
		Moves:       moves,
		FirstMarker: toMove,
		P1Name:      va.Player1.Name,
		P2Name:      va.Player2.Name,
	}
	listener.OnGameStart(info)

	g, err := game.New(firstPlayer, secondPlayer,
		game.WithBoard(opening),
		game.WithLogger(va.logger),
		game.OnPlay(func(e game.PlayEvent) {
			moves = append(moves, e.Position)
			info.Moves = moves
			info.GameMoveNum = len(moves)
			listener.OnMoveMade(info)
		}))
	if err != nil {
		return VersusDraw, GameOutcome{}, err
	}

	result, err := g.Run(ctx)
	if err != nil {
		return VersusDraw, GameOutcome{}, fmt.Errorf("game %v: %w", info.GameID, err)
	}

	outcome := computeOutcome(result.Board, toMove)
	agentResult := toAgentResult(outcome, p1First)

	info.Result = agentResult
	info.Winner = result.Winner
	info.FinishedGames = va.Total() + 1
	info.P1Wins, info.P2Wins, info.Draws = va.P1Wins(), va.P2Wins(), va.Draws()
	listener.OnFinishedGame(info)
	return agentResult, outcome, nil
}

// Board with 'plies' random plays inside the central area, X first, and
// the plays in the order they were made
func randomOpening(plies int) (gomoku.Board, []gomoku.Position) {
	board := gomoku.NewBoard()
	played := make([]gomoku.Position, 0, plies)
	marker := gomoku.X
	for i := 0; i < plies; i++ {
		empty := board.EmptyPositions(gomoku.CentralArea)
		if len(empty) == 0 {
			break
		}
		p := empty[frand.Intn(len(empty))]
		board = board.MustPlay(p, marker)
		played = append(played, p)
		marker = marker.Opponent()
	}
	return board, played
}
