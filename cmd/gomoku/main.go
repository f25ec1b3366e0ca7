package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/quenio/gomoku/pkg/bench"
	"github.com/quenio/gomoku/pkg/game"
	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/player"
	"github.com/quenio/gomoku/pkg/render"
	"github.com/quenio/gomoku/pkg/search"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := Setup(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := NewLogger(cfg.Trace)
	defer func() { _ = logger.Sync() }()
	trace := NewTraceLogger(cfg.Trace)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case ModeArena:
		err = runArena(ctx, cfg, trace)
	default:
		err = runPlay(ctx, cfg, trace)
	}
	if reportFailure(logger, err) {
		_ = logger.Sync()
		os.Exit(1)
	}
}

func limitsOf(cfg *Config) *search.Limits {
	if cfg.Movetime < 0 {
		return nil
	}
	return search.DefaultLimits().SetMovetime(cfg.Movetime)
}

func runPlay(ctx context.Context, cfg *Config, trace zerolog.Logger) error {
	var renderOpts []render.Option
	if !cfg.Color {
		renderOpts = append(renderOpts, render.WithProfile(termenv.Ascii))
	}
	renderer := render.New(os.Stdout, renderOpts...)

	aiMarker := cfg.Marker()
	aiOpts := []player.AIOption{player.WithAILogger(trace)}
	if limits := limitsOf(cfg); limits != nil {
		aiOpts = append(aiOpts, player.WithLimits(limits))
	}
	ai := player.NewAIPlayer(aiMarker, cfg.AISkill(), aiOpts...)

	human := player.NewHumanPlayer("You", aiMarker.Opponent(),
		newConsoleSource(os.Stdin, os.Stdout),
		player.WithHumanLogger(trace),
		player.WithRejectedHandler(func(_ gomoku.Position, err error) {
			fmt.Println(err)
		}))

	var first, second player.Player = ai, human
	if cfg.HumanFirst {
		first, second = human, ai
	}

	g, err := game.New(first, second,
		game.WithLogger(trace),
		game.OnPlay(func(e game.PlayEvent) {
			fmt.Println(renderer.Play(e.Player.Marker(), e.Position))
			_ = renderer.Print(e.Board)
		}))
	if err != nil {
		return err
	}

	fmt.Printf("You are %v, the AI plays %v at %v level\n", human.Marker(), aiMarker, ai.Skill())
	_ = renderer.Print(g.Board())

	result, err := g.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func runArena(ctx context.Context, cfg *Config, trace zerolog.Logger) error {
	limits := limitsOf(cfg)
	p1 := bench.Agent{Name: fmt.Sprintf("skill-%d", cfg.Skill), Skill: cfg.AISkill(), Limits: limits}
	p2 := bench.Agent{Name: fmt.Sprintf("skill-%d", cfg.OpponentSkill), Skill: player.Skill(cfg.OpponentSkill), Limits: limits}
	if p1.Name == p2.Name {
		p2.Name += "b"
	}

	arena := bench.NewVersusArena(p1, p2).
		Setup(cfg.Games, cfg.Workers, cfg.Opening).
		WithLogger(trace)

	summary, err := arena.Run(ctx, bench.NewArenaListener(bench.NewDefaultListener(trace)))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
