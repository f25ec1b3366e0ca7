package player

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/search"
)

// Source answering with the given positions in order, then io.EOF
func scripted(positions ...gomoku.Position) MoveSource {
	i := 0
	return MoveSourceFunc(func(context.Context, gomoku.Board, gomoku.Marker) (gomoku.Position, error) {
		if i >= len(positions) {
			return gomoku.InvalidPosition, io.EOF
		}
		i++
		return positions[i-1], nil
	})
}

func TestHumanRetriesRejectedMoves(t *testing.T) {
	board := gomoku.NewBoard().MustPlay(gomoku.Center, gomoku.X)

	var rejected []error
	human := NewHumanPlayer("human", gomoku.O,
		scripted(gomoku.NewPosition(15, 3), gomoku.Center, gomoku.NewPosition(6, 6)),
		WithRejectedHandler(func(_ gomoku.Position, err error) {
			rejected = append(rejected, err)
		}))

	next, err := human.Play(context.Background(), board)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !next.MarkedIn(gomoku.NewPosition(6, 6), gomoku.O) {
		t.Error("accepted move not on the board")
	}
	if len(rejected) != 2 ||
		!errors.Is(rejected[0], gomoku.ErrOutOfRange) ||
		!errors.Is(rejected[1], gomoku.ErrIllegalMove) {
		t.Errorf("rejected=%v", rejected)
	}
}

func TestHumanRetryBudget(t *testing.T) {
	board := gomoku.NewBoard().MustPlay(gomoku.Center, gomoku.X)
	human := NewHumanPlayer("human", gomoku.O,
		scripted(gomoku.Center, gomoku.Center, gomoku.Center),
		WithRetries(1))

	after, err := human.Play(context.Background(), board)
	if !errors.Is(err, ErrTooManyAttempts) || !errors.Is(err, gomoku.ErrIllegalMove) {
		t.Errorf("err=%v, want too many attempts", err)
	}
	if after.MarkedCount() != 1 {
		t.Error("failed turn changed the board")
	}
}

func TestHumanSourceError(t *testing.T) {
	human := NewHumanPlayer("human", gomoku.X, scripted())
	if _, err := human.Play(context.Background(), gomoku.NewBoard()); !errors.Is(err, io.EOF) {
		t.Errorf("err=%v, want=%v", err, io.EOF)
	}

	unreadable := MoveSourceFunc(func(context.Context, gomoku.Board, gomoku.Marker) (gomoku.Position, error) {
		return gomoku.ParsePosition("??")
	})
	human = NewHumanPlayer("human", gomoku.X, unreadable, WithRetries(0))
	if _, err := human.Play(context.Background(), gomoku.NewBoard()); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("err=%v, want=%v", err, ErrTooManyAttempts)
	}
}

func TestAIRefocus(t *testing.T) {
	ai := NewAIPlayer(gomoku.X, Novice)
	if ai.Focus() != gomoku.CentralArea {
		t.Fatalf("initial focus=%v", ai.Focus())
	}

	// strictly inside: unchanged
	ai.Refocus(gomoku.NewPosition(6, 6))
	if ai.Focus() != gomoku.CentralArea {
		t.Errorf("focus moved for an inner position: %v", ai.Focus())
	}

	// on the border: re-centered
	ai.Refocus(gomoku.NewPosition(4, 7))
	if want := gomoku.AreaAround(gomoku.NewPosition(4, 7), gomoku.FocusSide); ai.Focus() != want {
		t.Errorf("focus=%v, want=%v", ai.Focus(), want)
	}

	// outside and near the corner: re-centered and clamped
	ai.Refocus(gomoku.NewPosition(14, 0))
	if want := gomoku.NewArea(11, 0, 14, 2); ai.Focus() != want {
		t.Errorf("focus=%v, want=%v", ai.Focus(), want)
	}

	ai.Refocus(gomoku.InvalidPosition)
	if want := gomoku.NewArea(11, 0, 14, 2); ai.Focus() != want {
		t.Errorf("invalid position moved the focus to %v", ai.Focus())
	}
}

func TestAIPlaysWinningMove(t *testing.T) {
	board := gomoku.NewBoard()
	for _, column := range []int{3, 4, 5, 6} {
		board = board.MustPlay(gomoku.NewPosition(7, column), gomoku.X)
	}
	board = board.
		MustPlay(gomoku.NewPosition(7, 2), gomoku.O).
		MustPlay(gomoku.NewPosition(8, 8), gomoku.O)

	ai := NewAIPlayer(gomoku.X, Novice)
	next, err := ai.Play(context.Background(), board)
	if err != nil {
		t.Fatal(err)
	}
	if winner, _ := next.Winner(); winner != gomoku.X {
		t.Errorf("AI did not win, played %v", next.LastPlayed())
	}
	if ai.LastStats().Nodes == 0 {
		t.Error("LastStats not recorded")
	}
}

func TestAIFullFocusFallsBackToBoard(t *testing.T) {
	focus := gomoku.NewArea(0, 0, 2, 2)
	board := gomoku.NewBoard()
	marker := gomoku.X
	for _, p := range focus.Positions() {
		if p != gomoku.NewPosition(1, 1) {
			board = board.MustPlay(p, marker)
			marker = marker.Opponent()
		}
	}
	// last play strictly inside the focus keeps it in place
	board = board.MustPlay(gomoku.NewPosition(1, 1), marker)

	ai := NewAIPlayer(marker.Opponent(), Novice, WithFocus(focus))

	next, err := ai.Play(context.Background(), board)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if ai.Focus() != focus {
		t.Errorf("focus=%v, want=%v", ai.Focus(), focus)
	}
	if next.MarkedCount() != focus.SlotCount()+1 || next.LastPlayed().In(focus) {
		t.Errorf("AI did not play, marked=%d", next.MarkedCount())
	}
}

func TestAICancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ai := NewAIPlayer(gomoku.X, Master, WithLimits(search.DefaultLimits().SetMovetime(1000)))
	if _, err := ai.Play(ctx, gomoku.NewBoard()); !errors.Is(err, context.Canceled) {
		t.Errorf("err=%v, want=%v", err, context.Canceled)
	}
}

func TestParseSkill(t *testing.T) {
	tests := []struct {
		in   string
		want Skill
		ok   bool
	}{
		{"1", Novice, true},
		{"master", Master, true},
		{" Expert ", Expert, true},
		{"5", 0, false},
		{"grandmaster", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseSkill(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseSkill(%q)=%v,%v", tt.in, got, err)
		}
	}
	if Master.Depth() != 4 || Novice.Depth() != 1 {
		t.Error("skill depths")
	}
}
