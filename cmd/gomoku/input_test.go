package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/player"
)

func TestConsoleSource(t *testing.T) {
	var out bytes.Buffer
	source := newConsoleSource(strings.NewReader("zz\nh8\nH8\nj9\n"), &out)
	human := player.NewHumanPlayer("you", gomoku.X, source)

	board, err := human.Play(context.Background(), gomoku.NewBoard())
	if err != nil {
		t.Fatal(err)
	}
	if board.LastPlayed() != gomoku.Center {
		t.Errorf("played %v, want %v", board.LastPlayed(), gomoku.Center)
	}

	// H8 is taken now, J9 is accepted
	board, err = human.Play(context.Background(), board)
	if err != nil {
		t.Fatal(err)
	}
	if board.LastPlayed() != gomoku.NewPosition(8, 9) {
		t.Errorf("played %v, want J9", board.LastPlayed())
	}
	if !strings.Contains(out.String(), "X to play") {
		t.Errorf("prompt missing: %q", out.String())
	}

	if _, err := human.Play(context.Background(), board); !errors.Is(err, io.EOF) {
		t.Errorf("err=%v, want=%v", err, io.EOF)
	}
}
